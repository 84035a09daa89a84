package models

import "time"

// ContactModel stores a contact-form submission.
type ContactModel struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"not null"`
	Message string `json:"message" gorm:"not null;type:text"`
	Read    bool   `json:"read"    gorm:"default:false"`
	Replied bool   `json:"replied" gorm:"default:false"`
}

func (ContactModel) TableName() string { return "contacts" }

// SubscriberModel is a newsletter subscriber.
type SubscriberModel struct {
	Base
	Email        string    `json:"email"         gorm:"uniqueIndex;not null"`
	Source       string    `json:"source"        gorm:"default:'about_page'"`
	Active       bool      `json:"active"        gorm:"default:true"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

func (SubscriberModel) TableName() string { return "newsletter_subscribers" }
