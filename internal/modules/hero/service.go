package hero

import (
	"errors"

	"github.com/acwang/folio-core/internal/models"
	"gorm.io/gorm"
)

// Service handles the hero settings singleton.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func defaultSettings() models.HeroSettingsModel {
	return models.HeroSettingsModel{
		SettingsID:   models.HeroSettingsID,
		MainTitle:    "Welcome",
		Subtitle:     "Creative Developer",
		BioContent:   "",
		Button1Label: "View Portfolio",
		Button2Label: "Contact Me",
	}
}

// GetOrCreate returns the hero settings row, creating it with defaults
// on first access.
func (s *Service) GetOrCreate() (*models.HeroSettingsModel, error) {
	var settings models.HeroSettingsModel
	err := s.db.First(&settings, "settings_id = ?", models.HeroSettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = defaultSettings()
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update patches the singleton, creating it first when absent.
func (s *Service) Update(dto *UpdateHeroDTO) (*models.HeroSettingsModel, error) {
	settings, err := s.GetOrCreate()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.MainTitle != nil {
		updates["main_title"] = *dto.MainTitle
	}
	if dto.Subtitle != nil {
		updates["subtitle"] = *dto.Subtitle
	}
	if dto.BackgroundImageURL != nil {
		updates["background_image_url"] = *dto.BackgroundImageURL
	}
	if dto.PersonalPhotoURL != nil {
		updates["personal_photo_url"] = *dto.PersonalPhotoURL
	}
	if dto.BioContent != nil {
		updates["bio_content"] = *dto.BioContent
	}
	if dto.Button1Label != nil {
		updates["button1_label"] = *dto.Button1Label
	}
	if dto.Button2Label != nil {
		updates["button2_label"] = *dto.Button2Label
	}

	if len(updates) > 0 {
		if err := s.db.Model(settings).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return settings, nil
}
