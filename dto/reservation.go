package dto

// TripDurations are the day counts a trip can be booked for.
var TripDurations = []int{1, 2, 3, 4, 5, 6, 7, 14, 21, 28}

// CreateReservationRequest accepts two shapes: {start, days}, where the
// server derives end and price, or {start, end, price} computed by the
// client.
type CreateReservationRequest struct {
	UserID uint    `json:"userId" binding:"required"`
	Start  *Date   `json:"start" binding:"required"`
	End    *Date   `json:"end"`
	Days   int     `json:"days" binding:"omitempty,oneof=1 2 3 4 5 6 7 14 21 28"`
	Price  *Amount `json:"price" binding:"omitempty,gte=0"`
}
