package portfolio

import (
	"errors"

	"github.com/acwang/folio-core/internal/models"
	"gorm.io/gorm"
)

// Service handles portfolio business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns all portfolio items, newest first.
func (s *Service) List() ([]models.PortfolioModel, error) {
	var items []models.PortfolioModel
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

// GetByID fetches a single item by ID. Returns (nil, nil) when absent.
func (s *Service) GetByID(id string) (*models.PortfolioModel, error) {
	var item models.PortfolioModel
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new portfolio item.
func (s *Service) Create(dto *CreatePortfolioDTO) (*models.PortfolioModel, error) {
	item := models.PortfolioModel{
		Title:       dto.Title,
		Description: dto.Description,
		Content:     dto.Content,
		ImageURL:    dto.ImageURL,
		GithubURL:   dto.GithubURL,
		DemoURL:     dto.DemoURL,
		Tags:        dto.Tags,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update patches an item by ID. Returns (nil, nil) when absent.
func (s *Service) Update(id string, dto *UpdatePortfolioDTO) (*models.PortfolioModel, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if dto.GithubURL != nil {
		updates["github_url"] = *dto.GithubURL
	}
	if dto.DemoURL != nil {
		updates["demo_url"] = *dto.DemoURL
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringArray(dto.Tags)
	}

	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Delete soft-deletes an item by ID. Returns gorm.ErrRecordNotFound when absent.
func (s *Service) Delete(id string) error {
	result := s.db.Delete(&models.PortfolioModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
