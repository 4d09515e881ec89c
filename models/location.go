package models

import (
	"time"

	"gorm.io/datatypes"
)

type Location struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Address     string  `gorm:"column:location;size:255;not null" json:"location"`
	Price       float64 `gorm:"not null" json:"price"` // per day
	BestTime    string  `gorm:"column:best_time;size:255" json:"bestTime"`
	Hours       string  `gorm:"size:255" json:"hours"`

	// Rating is only written by the review aggregation.
	Rating float64 `gorm:"not null;default:0" json:"rating"`

	ImageURLs    datatypes.JSONSlice[string] `gorm:"column:image_urls" json:"imageUrl"`
	Attractions  datatypes.JSONSlice[string] `json:"attractions"`
	NearbyPlaces datatypes.JSONSlice[string] `gorm:"column:nearby_places" json:"nearbyPlaces"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LocationHotel and LocationRestaurant are the reference lists a location
// holds. They are plain id pairs, resolved by explicit queries.
type LocationHotel struct {
	LocationID uint `gorm:"primaryKey;autoIncrement:false"`
	HotelID    uint `gorm:"primaryKey;autoIncrement:false;index"`
}

type LocationRestaurant struct {
	LocationID   uint `gorm:"primaryKey;autoIncrement:false"`
	RestaurantID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

// LocationDetail is a location with its hotels and restaurants expanded.
type LocationDetail struct {
	Location
	Hotels      []Hotel      `json:"hotels"`
	Restaurants []Restaurant `json:"restaurants"`
}
