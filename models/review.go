package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LocationID uint      `gorm:"index;not null" json:"location"`
	UserID     uint      `gorm:"index;not null" json:"user"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	Rating     int       `gorm:"not null" json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewWithUser is a review with its author expanded. User is nil when
// the referenced user no longer exists.
type ReviewWithUser struct {
	ID         uint         `json:"id"`
	LocationID uint         `json:"location"`
	User       *UserSummary `json:"user"`
	Comment    string       `json:"comment"`
	Rating     int          `json:"rating"`
	CreatedAt  time.Time    `json:"createdAt"`
}
