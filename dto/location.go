package dto

import (
	"strings"

	"tourism-backend/models"

	"gorm.io/datatypes"
)

// CreateLocationRequest is POST /api/location. Every field is required;
// hotels and restaurants must be present but may be empty lists.
type CreateLocationRequest struct {
	Name         string   `json:"name" binding:"required,notblank"`
	Description  string   `json:"description" binding:"required,notblank"`
	Location     string   `json:"location" binding:"required,notblank"`
	Price        Amount   `json:"price" binding:"required,gt=0"`
	BestTime     string   `json:"bestTime" binding:"required,notblank"`
	Hours        string   `json:"hours" binding:"required,notblank"`
	ImageURLs    []string `json:"imageUrl" binding:"required,min=1,dive,required,notblank"`
	Attractions  []string `json:"attractions" binding:"required,min=1,dive,required,notblank"`
	NearbyPlaces []string `json:"nearbyPlaces" binding:"required,min=1,dive,required,notblank"`
	Hotels       []uint   `json:"hotels" binding:"required"`
	Restaurants  []uint   `json:"restaurants" binding:"required"`
}

func (r CreateLocationRequest) ToModel() models.Location {
	return models.Location{
		Name:         strings.TrimSpace(r.Name),
		Description:  strings.TrimSpace(r.Description),
		Address:      strings.TrimSpace(r.Location),
		Price:        float64(r.Price),
		BestTime:     strings.TrimSpace(r.BestTime),
		Hours:        strings.TrimSpace(r.Hours),
		ImageURLs:    datatypes.JSONSlice[string](r.ImageURLs),
		Attractions:  datatypes.JSONSlice[string](r.Attractions),
		NearbyPlaces: datatypes.JSONSlice[string](r.NearbyPlaces),
	}
}

// UpdateLocationRequest is PUT /api/location?id=. Absent fields are left
// untouched. Rating is not updatable.
type UpdateLocationRequest struct {
	Name         *string   `json:"name" binding:"omitempty,notblank"`
	Description  *string   `json:"description" binding:"omitempty,notblank"`
	Location     *string   `json:"location" binding:"omitempty,notblank"`
	Price        *Amount   `json:"price" binding:"omitempty,gt=0"`
	BestTime     *string   `json:"bestTime" binding:"omitempty,notblank"`
	Hours        *string   `json:"hours" binding:"omitempty,notblank"`
	ImageURLs    *[]string `json:"imageUrl" binding:"omitempty,min=1,dive,notblank"`
	Attractions  *[]string `json:"attractions" binding:"omitempty,min=1,dive,notblank"`
	NearbyPlaces *[]string `json:"nearbyPlaces" binding:"omitempty,min=1,dive,notblank"`
}

// Updates returns the column map for a partial gorm update.
func (r UpdateLocationRequest) Updates() map[string]any {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		out["description"] = strings.TrimSpace(*r.Description)
	}
	if r.Location != nil {
		out["location"] = strings.TrimSpace(*r.Location)
	}
	if r.Price != nil {
		out["price"] = float64(*r.Price)
	}
	if r.BestTime != nil {
		out["best_time"] = strings.TrimSpace(*r.BestTime)
	}
	if r.Hours != nil {
		out["hours"] = strings.TrimSpace(*r.Hours)
	}
	if r.ImageURLs != nil {
		out["image_urls"] = datatypes.JSONSlice[string](*r.ImageURLs)
	}
	if r.Attractions != nil {
		out["attractions"] = datatypes.JSONSlice[string](*r.Attractions)
	}
	if r.NearbyPlaces != nil {
		out["nearby_places"] = datatypes.JSONSlice[string](*r.NearbyPlaces)
	}
	return out
}
