package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/acwang/folio-core/internal/models"
	"github.com/acwang/folio-core/internal/pkg/mail"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrAlreadySubscribed is returned when the email already has an
// active subscription.
var ErrAlreadySubscribed = errors.New("this email is already subscribed")

// SubscribeResult reports the outcome of a newsletter signup.
type SubscribeResult struct {
	SubscriberID string
	Message      string
}

// Service handles contact messages and newsletter subscriptions.
type Service struct {
	db       *gorm.DB
	sender   *mail.Sender
	notifyTo string
	logger   *zap.Logger
}

func NewService(db *gorm.DB, sender *mail.Sender, notifyTo string, logger *zap.Logger) *Service {
	return &Service{db: db, sender: sender, notifyTo: notifyTo, logger: logger}
}

// Subscribe records a newsletter signup. An inactive subscriber with the
// same email is reactivated; an active one gets ErrAlreadySubscribed.
func (s *Service) Subscribe(dto *SubscribeDTO) (*SubscribeResult, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var existing models.SubscriberModel
	err := s.db.First(&existing, "email = ?", email).Error
	switch {
	case err == nil:
		if existing.Active {
			return nil, ErrAlreadySubscribed
		}
		updates := map[string]interface{}{
			"active":        true,
			"subscribed_at": time.Now(),
		}
		if dto.Source != "" {
			updates["source"] = dto.Source
		}
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &SubscribeResult{
			SubscriberID: existing.ID,
			Message:      "Welcome back! Your subscription has been reactivated.",
		}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to create
	default:
		return nil, err
	}

	sub := models.SubscriberModel{
		Email:        email,
		Active:       true,
		SubscribedAt: time.Now(),
	}
	if dto.Source != "" {
		sub.Source = dto.Source
	}
	if err := s.db.Create(&sub).Error; err != nil {
		return nil, err
	}
	return &SubscribeResult{
		SubscriberID: sub.ID,
		Message:      "Thanks for subscribing!",
	}, nil
}

// SubmitContact stores a contact form message and notifies the site
// owner by mail when a sender is configured. Mail failures are logged,
// not surfaced; the message is already persisted.
func (s *Service) SubmitContact(dto *ContactDTO) (*models.ContactModel, error) {
	contact := models.ContactModel{
		Name:    strings.TrimSpace(dto.Name),
		Email:   strings.ToLower(strings.TrimSpace(dto.Email)),
		Message: dto.Message,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}

	if s.sender != nil && s.notifyTo != "" {
		msg := mail.ContactNotification(contact.Name, contact.Email, contact.Message)
		msg.To = []string{s.notifyTo}
		if err := s.sender.Send(msg); err != nil {
			s.logger.Warn("contact notification mail failed", zap.Error(err))
		}
	}
	return &contact, nil
}

// ListContacts returns contact messages, newest first.
func (s *Service) ListContacts() ([]models.ContactModel, error) {
	var contacts []models.ContactModel
	err := s.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// MarkContactRead flags a contact message as read.
func (s *Service) MarkContactRead(id string) (*models.ContactModel, error) {
	var contact models.ContactModel
	if err := s.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.db.Model(&contact).Update("read", true).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListSubscribers returns active newsletter subscribers, newest first.
func (s *Service) ListSubscribers() ([]models.SubscriberModel, error) {
	var subs []models.SubscriberModel
	err := s.db.Where("active = ?", true).Order("subscribed_at DESC").Find(&subs).Error
	return subs, err
}
