package models

import "time"

// BlogPostModel is a blog post.
type BlogPostModel struct {
	Base
	Title       string      `json:"title"        gorm:"not null"`
	Subtitle    string      `json:"subtitle"`
	Content     string      `json:"content"      gorm:"type:longtext"`
	CoverImage  string      `json:"cover_image"`
	Tags        StringArray `json:"tags"         gorm:"type:json"`
	IsPublished bool        `json:"is_published" gorm:"default:false;index"`
	PublishedAt *time.Time  `json:"published_at"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }
