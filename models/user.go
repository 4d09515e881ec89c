package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Username  string    `gorm:"size:150;not null" json:"username"`
	Image     string    `gorm:"size:512" json:"image,omitempty"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Address   string    `gorm:"size:255;default:''" json:"address"`
	IsAdmin   bool      `gorm:"column:is_admin;default:false;not null" json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserSummary is the public subset embedded in review listings.
type UserSummary struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Username: u.Username, Image: u.Image}
}
