package portfolio

import (
	"time"

	"github.com/acwang/folio-core/internal/models"
)

// CreatePortfolioDTO is the request body for creating a portfolio item.
type CreatePortfolioDTO struct {
	Title       string   `json:"title"       binding:"required"`
	Description string   `json:"description" binding:"required"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"image_url"`
	GithubURL   string   `json:"github_url"`
	DemoURL     string   `json:"demo_url"`
	Tags        []string `json:"tags"`
}

// UpdatePortfolioDTO is the request body for updating a portfolio item
// (all fields optional). Server-assigned fields are never bound.
type UpdatePortfolioDTO struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	ImageURL    *string  `json:"image_url"`
	GithubURL   *string  `json:"github_url"`
	DemoURL     *string  `json:"demo_url"`
	Tags        []string `json:"tags"`
}

// portfolioResponse is the API response shape for a portfolio item.
type portfolioResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"image_url"`
	GithubURL   string     `json:"github_url"`
	DemoURL     string     `json:"demo_url"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func toResponse(p *models.PortfolioModel) portfolioResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	var updated *time.Time
	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		updated = &updatedAt
	}
	return portfolioResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		ImageURL:    p.ImageURL,
		GithubURL:   p.GithubURL,
		DemoURL:     p.DemoURL,
		Tags:        tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updated,
	}
}
