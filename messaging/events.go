package messaging

import "time"

const (
	EventReviewCreated      = "review.created"
	EventReservationCreated = "reservation.created"
)

// Event is the envelope published for every domain event.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type ReviewCreated struct {
	ReviewID   uint    `json:"reviewId"`
	LocationID uint    `json:"locationId"`
	UserID     uint    `json:"userId"`
	Rating     int     `json:"rating"`
	NewAverage float64 `json:"newAverage"`
	Reviews    int64   `json:"reviews"`
}

type ReservationCreated struct {
	ReservationID uint      `json:"reservationId"`
	LocationID    uint      `json:"locationId"`
	UserID        uint      `json:"userId"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Price         float64   `json:"price"`
}
