package models

import "time"

type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LocationID uint      `gorm:"index;not null" json:"location"`
	UserID     uint      `gorm:"index;not null" json:"user"`
	Start      time.Time `gorm:"not null" json:"start"`
	End        time.Time `gorm:"not null" json:"end"`
	Price      float64   `gorm:"not null" json:"price"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReservationWithLocation expands the booked location; Location is nil
// when it has since been deleted.
type ReservationWithLocation struct {
	ID        uint      `json:"id"`
	Location  *Location `json:"location"`
	UserID    uint      `json:"user"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}
