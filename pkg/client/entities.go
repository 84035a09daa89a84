package client

import (
	"encoding/json"
	"time"
)

// Portfolio is the canonical client-side shape of a portfolio item.
type Portfolio struct {
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

// BlogPost is the canonical client-side shape of a blog post.
type BlogPost struct {
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

// Hero is the canonical client-side shape of the hero settings singleton.
type Hero struct {
	ID                 string `json:"id"`
	MainTitle          string `json:"main_title"`
	Subtitle           string `json:"subtitle"`
	BackgroundImageURL string `json:"background_image_url"`
	PersonalPhotoURL   string `json:"personal_photo_url"`
	BioContent         string `json:"bio_content"`
	BioHTML            string `json:"bio_html"`
	Button1Label       string `json:"button_1_label"`
	Button2Label       string `json:"button_2_label"`
}

// Profile identifies the logged-in admin.
type Profile struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// normalizeIDKeys renames any "_id" key to "id" throughout a decoded
// JSON document, so backends with either naming produce one canonical
// shape. Unparseable input is returned untouched.
func normalizeIDKeys(data []byte) []byte {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return data
	}
	v = renameIDKey(v)
	out, err := json.Marshal(v)
	if err != nil {
		return data
	}
	return out
}

func renameIDKey(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		if legacy, ok := t["_id"]; ok {
			if _, exists := t["id"]; !exists {
				t["id"] = legacy
			}
			delete(t, "_id")
		}
		for k, child := range t {
			t[k] = renameIDKey(child)
		}
		return t
	case []interface{}:
		for i, child := range t {
			t[i] = renameIDKey(child)
		}
		return t
	default:
		return v
	}
}
