package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tourism-backend/apperrors"
	"tourism-backend/cache"
	"tourism-backend/dto"
	"tourism-backend/messaging"
	"tourism-backend/metrics"
	"tourism-backend/models"
)

type ReviewService struct {
	DB     *gorm.DB
	Cache  *cache.LocationCache
	Events messaging.Publisher
}

func NewReviewService(db *gorm.DB, c *cache.LocationCache, events messaging.Publisher) *ReviewService {
	if events == nil {
		events = messaging.NoopPublisher{}
	}
	return &ReviewService{DB: db, Cache: c, Events: events}
}

// ListByLocation returns the location's reviews with their authors.
func (s *ReviewService) ListByLocation(ctx context.Context, locationID uint) ([]models.ReviewWithUser, error) {
	db := s.DB.WithContext(ctx)

	var reviews []models.Review
	if err := db.Where("location_id = ?", locationID).Order("id").Find(&reviews).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}

	userIDs := make([]uint, 0, len(reviews))
	for _, r := range reviews {
		userIDs = append(userIDs, r.UserID)
	}
	users, err := usersByID(db, uniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}

	out := make([]models.ReviewWithUser, 0, len(reviews))
	for _, r := range reviews {
		item := models.ReviewWithUser{
			ID:         r.ID,
			LocationID: r.LocationID,
			Comment:    r.Comment,
			Rating:     r.Rating,
			CreatedAt:  r.CreatedAt,
		}
		if u, ok := users[r.UserID]; ok {
			summary := u.Summary()
			item.User = &summary
		}
		out = append(out, item)
	}
	return out, nil
}

// Create stores a review and recomputes the location's average rating in
// the same transaction. The location row is locked first, so concurrent
// reviews on one location are applied one after the other.
func (s *ReviewService) Create(ctx context.Context, locationID uint, req dto.CreateReviewRequest) (*models.Review, error) {
	comment := strings.TrimSpace(req.Comment)
	if req.UserID == 0 || comment == "" || req.Rating == 0 {
		return nil, apperrors.NewValidationError("All fields are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5")
	}

	review := models.Review{
		LocationID: locationID,
		UserID:     req.UserID,
		Comment:    comment,
		Rating:     req.Rating,
	}
	var agg ratingAggregate

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var location models.Location
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&location, locationID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("Location not found")
			}
			return apperrors.NewInternalError("failed to lock location", err)
		}

		if err := ensureUserExists(tx, req.UserID); err != nil {
			return err
		}

		if err := tx.Create(&review).Error; err != nil {
			return apperrors.NewInternalError("failed to create review", err)
		}

		agg, err = recomputeRating(tx, locationID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Invalidate(locationID)
	}
	metrics.ReviewsCreatedTotal.Inc()
	s.Events.Publish(ctx, messaging.EventReviewCreated, messaging.ReviewCreated{
		ReviewID:   review.ID,
		LocationID: locationID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		NewAverage: agg.Average,
		Reviews:    agg.Count,
	})
	log.Ctx(ctx).Info().
		Uint("location_id", locationID).
		Uint("review_id", review.ID).
		Float64("rating", agg.Average).
		Int64("reviews", agg.Count).
		Msg("review created")
	return &review, nil
}

type ratingAggregate struct {
	Count   int64
	Total   float64
	Average float64
}

// recomputeRating sets the location's rating to the mean of all its
// review ratings (0 when there are none).
func recomputeRating(tx *gorm.DB, locationID uint) (ratingAggregate, error) {
	var agg ratingAggregate
	err := tx.Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS total").
		Where("location_id = ?", locationID).
		Scan(&agg).Error
	if err != nil {
		return agg, apperrors.NewInternalError("failed to aggregate ratings", err)
	}
	if agg.Count > 0 {
		agg.Average = agg.Total / float64(agg.Count)
	}

	err = tx.Model(&models.Location{}).
		Where("id = ?", locationID).
		Update("rating", agg.Average).Error
	if err != nil {
		return agg, apperrors.NewInternalError("failed to update location rating", err)
	}
	return agg, nil
}

func ensureUserExists(tx *gorm.DB, userID uint) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return apperrors.NewInternalError("failed to check user", err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

func usersByID(db *gorm.DB, ids []uint) (map[uint]models.User, error) {
	out := make(map[uint]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []models.User
	if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to load users", err)
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}
