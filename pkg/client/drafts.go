package client

import (
	"fmt"
	"sort"
	"strings"
)

// Draft is an unsaved copy of an entity's editable fields. Server-only
// fields (id, timestamps) are absent by construction, so a marshalled
// draft is always a clean create/update payload.
type Draft interface {
	Validate() error
}

// ValidationError reports the required fields missing from a draft.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &ValidationError{Missing: missing}
}

// PortfolioDraft holds the editable fields of a portfolio item.
type PortfolioDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	GithubURL   string   `json:"github_url,omitempty"`
	DemoURL     string   `json:"demo_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (d PortfolioDraft) Validate() error {
	return requireFields(map[string]string{
		"title":       d.Title,
		"description": d.Description,
	})
}

// BlogPostDraft holds the editable fields of a blog post. IsPublished
// is a pointer so a partial draft leaves the publish state untouched
// instead of silently unpublishing the post.
type BlogPostDraft struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Content     string   `json:"content,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublished *bool    `json:"is_published,omitempty"`
}

func (d BlogPostDraft) Validate() error {
	return requireFields(map[string]string{
		"title": d.Title,
	})
}

// HeroDraft holds the editable fields of the hero settings singleton.
// Only the image URLs are optional.
type HeroDraft struct {
	MainTitle          string `json:"main_title"`
	Subtitle           string `json:"subtitle"`
	BackgroundImageURL string `json:"background_image_url,omitempty"`
	PersonalPhotoURL   string `json:"personal_photo_url,omitempty"`
	BioContent         string `json:"bio_content"`
	Button1Label       string `json:"button_1_label"`
	Button2Label       string `json:"button_2_label"`
}

func (d HeroDraft) Validate() error {
	return requireFields(map[string]string{
		"main_title":    d.MainTitle,
		"subtitle":      d.Subtitle,
		"bio_content":   d.BioContent,
		"button_1_label": d.Button1Label,
		"button_2_label": d.Button2Label,
	})
}
