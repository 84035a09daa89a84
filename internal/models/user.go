package models

import "time"

// UserModel represents the site owner/admin. Login uses email as username.
type UserModel struct {
	Base
	Email     string     `json:"email"    gorm:"uniqueIndex;not null"`
	Password  string     `json:"-"        gorm:"not null"` // bcrypt hash
	Nickname  string     `json:"nickname"`
	LastLogin *time.Time `json:"last_login"`
}

func (UserModel) TableName() string { return "users" }
