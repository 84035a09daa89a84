package models

// PortfolioModel is a single portfolio work.
type PortfolioModel struct {
	Base
	Title       string      `json:"title"       gorm:"not null"`
	Description string      `json:"description" gorm:"not null;type:text"`
	Content     string      `json:"content"     gorm:"type:longtext"` // rich text, optional
	ImageURL    string      `json:"image_url"`
	GithubURL   string      `json:"github_url"`
	DemoURL     string      `json:"demo_url"`
	Tags        StringArray `json:"tags"        gorm:"type:json"`
}

func (PortfolioModel) TableName() string { return "portfolio_items" }
