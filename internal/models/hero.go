package models

// HeroSettingsID is the fixed key of the singleton hero settings row.
const HeroSettingsID = "hero_settings"

// HeroSettingsModel is the singleton record backing the landing-page hero section.
type HeroSettingsModel struct {
	Base
	SettingsID         string `json:"settings_id"          gorm:"uniqueIndex;not null"`
	MainTitle          string `json:"main_title"           gorm:"not null"`
	Subtitle           string `json:"subtitle"             gorm:"not null"`
	BackgroundImageURL string `json:"background_image_url"`
	PersonalPhotoURL   string `json:"personal_photo_url"`
	BioContent         string `json:"bio_content"          gorm:"type:longtext"` // markdown
	Button1Label       string `json:"button_1_label"       gorm:"not null"`
	Button2Label       string `json:"button_2_label"       gorm:"not null"`
}

func (HeroSettingsModel) TableName() string { return "hero_settings" }
