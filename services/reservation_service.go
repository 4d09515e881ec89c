package services

import (
	"context"
	"errors"
	"math"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"tourism-backend/apperrors"
	"tourism-backend/dto"
	"tourism-backend/messaging"
	"tourism-backend/metrics"
	"tourism-backend/models"
)

// IsTripDuration reports whether days is one of the bookable durations.
func IsTripDuration(days int) bool {
	return slices.Contains(dto.TripDurations, days)
}

// PlanTrip returns the last day of a trip that starts on start and lasts
// days days, and its total price. A one-day trip ends on its start day.
func PlanTrip(start time.Time, days int, unitPrice float64) (time.Time, float64) {
	end := start.AddDate(0, 0, days-1)
	return end, roundCents(unitPrice * float64(days))
}

// tripDays counts the calendar days covered by [start, end], both included.
func tripDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

type ReservationService struct {
	DB     *gorm.DB
	Events messaging.Publisher
}

func NewReservationService(db *gorm.DB, events messaging.Publisher) *ReservationService {
	if events == nil {
		events = messaging.NoopPublisher{}
	}
	return &ReservationService{DB: db, Events: events}
}

func (s *ReservationService) Create(ctx context.Context, locationID uint, req dto.CreateReservationRequest) (*models.Reservation, error) {
	if req.UserID == 0 || req.Start == nil || req.Start.IsZero() {
		return nil, apperrors.NewValidationError("All fields are required")
	}
	hasEnd := req.End != nil && !req.End.IsZero()
	if req.Days == 0 && !hasEnd {
		return nil, apperrors.NewValidationError("days or end is required")
	}
	if req.Days != 0 && !IsTripDuration(req.Days) {
		return nil, apperrors.NewValidationError("days must be one of the offered trip durations")
	}
	if hasEnd && req.End.Before(req.Start.Time) {
		return nil, apperrors.NewValidationError("end must not be before start")
	}

	db := s.DB.WithContext(ctx)

	var location models.Location
	if err := db.Select("id", "price").First(&location, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Location not found")
		}
		return nil, apperrors.NewInternalError("failed to load location", err)
	}
	if err := ensureUserExists(db, req.UserID); err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		LocationID: locationID,
		UserID:     req.UserID,
		Start:      req.Start.UTC(),
	}
	switch {
	case req.Days != 0:
		reservation.End, reservation.Price = PlanTrip(reservation.Start, req.Days, location.Price)
	default:
		reservation.End = req.End.UTC()
		if req.Price != nil {
			reservation.Price = roundCents(float64(*req.Price))
		} else {
			reservation.Price = roundCents(location.Price * float64(tripDays(reservation.Start, reservation.End)))
		}
	}

	if err := db.Create(&reservation).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to create reservation", err)
	}

	metrics.ReservationsCreatedTotal.Inc()
	s.Events.Publish(ctx, messaging.EventReservationCreated, messaging.ReservationCreated{
		ReservationID: reservation.ID,
		LocationID:    reservation.LocationID,
		UserID:        reservation.UserID,
		Start:         reservation.Start,
		End:           reservation.End,
		Price:         reservation.Price,
	})
	log.Ctx(ctx).Info().
		Uint("location_id", locationID).
		Uint("reservation_id", reservation.ID).
		Float64("price", reservation.Price).
		Msg("reservation created")
	return &reservation, nil
}

// ListByUser returns the user's reservations with the booked location
// expanded.
func (s *ReservationService) ListByUser(ctx context.Context, userID uint) ([]models.ReservationWithLocation, error) {
	db := s.DB.WithContext(ctx)

	var reservations []models.Reservation
	if err := db.Where("user_id = ?", userID).Order("id").Find(&reservations).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list reservations", err)
	}

	locationIDs := make([]uint, 0, len(reservations))
	for _, r := range reservations {
		locationIDs = append(locationIDs, r.LocationID)
	}
	locations := make(map[uint]models.Location)
	if ids := uniqueIDs(locationIDs); len(ids) > 0 {
		var found []models.Location
		if err := db.Where("id IN ?", ids).Find(&found).Error; err != nil {
			return nil, apperrors.NewInternalError("failed to load locations", err)
		}
		for _, l := range found {
			locations[l.ID] = l
		}
	}

	out := make([]models.ReservationWithLocation, 0, len(reservations))
	for _, r := range reservations {
		item := models.ReservationWithLocation{
			ID:        r.ID,
			UserID:    r.UserID,
			Start:     r.Start,
			End:       r.End,
			Price:     r.Price,
			CreatedAt: r.CreatedAt,
		}
		if l, ok := locations[r.LocationID]; ok {
			item.Location = &l
		}
		out = append(out, item)
	}
	return out, nil
}
