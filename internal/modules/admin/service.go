package admin

import (
	"errors"
	"strings"
	"time"

	"github.com/acwang/folio-core/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrAlreadyRegistered is returned once an admin account exists.
	ErrAlreadyRegistered = errors.New("admin account already exists")
)

// Service handles admin authentication.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Authenticate checks the credentials and stamps last_login on success.
func (s *Service) Authenticate(email, password string) (*models.UserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.UserModel
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return &user, nil
}

// Register creates the admin account. Only the first registration is
// accepted; the site is single-admin.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.UserModel{
		Email:    strings.ToLower(strings.TrimSpace(dto.Email)),
		Password: string(hash),
		Nickname: dto.Nickname,
	}
	if user.Nickname == "" {
		user.Nickname = "Admin"
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
