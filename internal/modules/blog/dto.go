package blog

import (
	"time"

	"github.com/acwang/folio-core/internal/models"
)

// CreateBlogPostDTO is the request body for creating a blog post.
type CreateBlogPostDTO struct {
	Title       string   `json:"title"        binding:"required"`
	Subtitle    string   `json:"subtitle"`
	Content     string   `json:"content"`
	CoverImage  string   `json:"cover_image"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"is_published"`
}

// UpdateBlogPostDTO is the request body for updating a blog post
// (all fields optional).
type UpdateBlogPostDTO struct {
	Title       *string  `json:"title"`
	Subtitle    *string  `json:"subtitle"`
	Content     *string  `json:"content"`
	CoverImage  *string  `json:"cover_image"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"is_published"`
}

// ListQuery holds query params for listing posts.
type ListQuery struct {
	PublishedOnly *bool `form:"publishedOnly"`
}

// blogPostResponse is the API response shape for a blog post.
type blogPostResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"cover_image"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func toResponse(p *models.BlogPostModel) blogPostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	var updated *time.Time
	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		updated = &updatedAt
	}
	return blogPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Content:     p.Content,
		CoverImage:  p.CoverImage,
		Tags:        tags,
		IsPublished: p.IsPublished,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updated,
	}
}
