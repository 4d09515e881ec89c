package dto

import (
	"strings"

	"tourism-backend/models"
)

type TimingRequest struct {
	Start string `json:"start" binding:"required,notblank"`
	End   string `json:"end" binding:"required,notblank"`
}

// CreateVenueRequest is the body of POST /api/hotel and POST /api/restaurant.
type CreateVenueRequest struct {
	Name        string         `json:"name" binding:"required,notblank"`
	Description string         `json:"description" binding:"required,notblank"`
	Location    string         `json:"location" binding:"required,notblank"`
	Timing      *TimingRequest `json:"timing" binding:"required"`
	Banner      string         `json:"banner" binding:"required,notblank"`
}

func (r CreateVenueRequest) timing() models.Timing {
	return models.Timing{
		Start: strings.TrimSpace(r.Timing.Start),
		End:   strings.TrimSpace(r.Timing.End),
	}
}

func (r CreateVenueRequest) ToHotel() models.Hotel {
	return models.Hotel{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Location:    strings.TrimSpace(r.Location),
		Timing:      r.timing(),
		Banner:      strings.TrimSpace(r.Banner),
	}
}

func (r CreateVenueRequest) ToRestaurant() models.Restaurant {
	return models.Restaurant{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Location:    strings.TrimSpace(r.Location),
		Timing:      r.timing(),
		Banner:      strings.TrimSpace(r.Banner),
	}
}
