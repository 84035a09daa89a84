package blog

import (
	"errors"
	"time"

	"github.com/acwang/folio-core/internal/models"
	"gorm.io/gorm"
)

// Service handles blog post business logic.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns blog posts, most recently published first. When
// publishedOnly is set, unpublished drafts are excluded.
func (s *Service) List(publishedOnly bool) ([]models.BlogPostModel, error) {
	tx := s.db.Order("published_at DESC, created_at DESC")
	if publishedOnly {
		tx = tx.Where("is_published = ?", true)
	}
	var posts []models.BlogPostModel
	err := tx.Find(&posts).Error
	return posts, err
}

// Count returns the number of posts matching the published filter.
func (s *Service) Count(publishedOnly bool) (int64, error) {
	tx := s.db.Model(&models.BlogPostModel{})
	if publishedOnly {
		tx = tx.Where("is_published = ?", true)
	}
	var count int64
	err := tx.Count(&count).Error
	return count, err
}

// GetByID fetches a single post by ID. Returns (nil, nil) when absent,
// or when the post is unpublished and isAdmin is false.
func (s *Service) GetByID(id string, isAdmin bool) (*models.BlogPostModel, error) {
	var post models.BlogPostModel
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !isAdmin && !post.IsPublished {
		return nil, nil
	}
	return &post, nil
}

// Create inserts a new blog post. Publishing at creation time stamps
// published_at.
func (s *Service) Create(dto *CreateBlogPostDTO) (*models.BlogPostModel, error) {
	post := models.BlogPostModel{
		Title:      dto.Title,
		Subtitle:   dto.Subtitle,
		Content:    dto.Content,
		CoverImage: dto.CoverImage,
		Tags:       dto.Tags,
	}
	if dto.IsPublished != nil {
		post.IsPublished = *dto.IsPublished
	}
	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update patches a post by ID. The first transition to published stamps
// published_at; republishing keeps the original timestamp.
func (s *Service) Update(id string, dto *UpdateBlogPostDTO) (*models.BlogPostModel, error) {
	post, err := s.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Subtitle != nil {
		updates["subtitle"] = *dto.Subtitle
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.CoverImage != nil {
		updates["cover_image"] = *dto.CoverImage
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringArray(dto.Tags)
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
		if *dto.IsPublished && post.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(post).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return post, nil
}

// Delete soft-deletes a post by ID. Returns gorm.ErrRecordNotFound when absent.
func (s *Service) Delete(id string) error {
	result := s.db.Delete(&models.BlogPostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
