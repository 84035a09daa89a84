package hero

import (
	"time"

	"github.com/acwang/folio-core/internal/models"
)

// UpdateHeroDTO is the request body for updating the hero section
// (all fields optional).
type UpdateHeroDTO struct {
	MainTitle          *string `json:"main_title"`
	Subtitle           *string `json:"subtitle"`
	BackgroundImageURL *string `json:"background_image_url"`
	PersonalPhotoURL   *string `json:"personal_photo_url"`
	BioContent         *string `json:"bio_content"`
	Button1Label       *string `json:"button_1_label"`
	Button2Label       *string `json:"button_2_label"`
}

// heroResponse is the API response shape for the hero settings singleton.
// BioHTML is rendered server-side from the markdown bio.
type heroResponse struct {
	ID                 string     `json:"id"`
	SettingsID         string     `json:"settings_id"`
	MainTitle          string     `json:"main_title"`
	Subtitle           string     `json:"subtitle"`
	BackgroundImageURL string     `json:"background_image_url"`
	PersonalPhotoURL   string     `json:"personal_photo_url"`
	BioContent         string     `json:"bio_content"`
	BioHTML            string     `json:"bio_html"`
	Button1Label       string     `json:"button_1_label"`
	Button2Label       string     `json:"button_2_label"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

func toResponse(h *models.HeroSettingsModel, bioHTML string) heroResponse {
	var updated *time.Time
	if !h.UpdatedAt.IsZero() {
		updatedAt := h.UpdatedAt
		updated = &updatedAt
	}
	return heroResponse{
		ID:                 h.ID,
		SettingsID:         h.SettingsID,
		MainTitle:          h.MainTitle,
		Subtitle:           h.Subtitle,
		BackgroundImageURL: h.BackgroundImageURL,
		PersonalPhotoURL:   h.PersonalPhotoURL,
		BioContent:         h.BioContent,
		BioHTML:            bioHTML,
		Button1Label:       h.Button1Label,
		Button2Label:       h.Button2Label,
		CreatedAt:          h.CreatedAt,
		UpdatedAt:          updated,
	}
}
