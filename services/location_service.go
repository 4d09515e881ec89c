package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"tourism-backend/apperrors"
	"tourism-backend/cache"
	"tourism-backend/dto"
	"tourism-backend/models"
)

type LocationService struct {
	DB    *gorm.DB
	Cache *cache.LocationCache
}

func NewLocationService(db *gorm.DB, c *cache.LocationCache) *LocationService {
	return &LocationService{DB: db, Cache: c}
}

func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	var generation uint64
	if s.Cache != nil {
		if cached, ok := s.Cache.GetList(); ok {
			return cached, nil
		}
		generation = s.Cache.Generation()
	}

	locations := make([]models.Location, 0)
	if err := s.DB.WithContext(ctx).Order("id").Find(&locations).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list locations", err)
	}
	if s.Cache != nil {
		s.Cache.SetList(generation, locations)
	}
	return locations, nil
}

// Get returns the location with hotels and restaurants expanded, or nil
// when no location has that id.
func (s *LocationService) Get(ctx context.Context, id uint) (*models.LocationDetail, error) {
	var generation uint64
	if s.Cache != nil {
		if cached, ok := s.Cache.GetDetail(id); ok {
			return cached, nil
		}
		generation = s.Cache.Generation()
	}

	db := s.DB.WithContext(ctx)
	var location models.Location
	if err := db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewInternalError("failed to load location", err)
	}

	hotels := make([]models.Hotel, 0)
	err := db.Joins("JOIN location_hotels ON location_hotels.hotel_id = hotels.id").
		Where("location_hotels.location_id = ?", id).
		Order("hotels.id").
		Find(&hotels).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load location hotels", err)
	}

	restaurants := make([]models.Restaurant, 0)
	err = db.Joins("JOIN location_restaurants ON location_restaurants.restaurant_id = restaurants.id").
		Where("location_restaurants.location_id = ?", id).
		Order("restaurants.id").
		Find(&restaurants).Error
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load location restaurants", err)
	}

	detail := &models.LocationDetail{Location: location, Hotels: hotels, Restaurants: restaurants}
	if s.Cache != nil {
		s.Cache.SetDetail(generation, detail)
	}
	return detail, nil
}

func (s *LocationService) Create(ctx context.Context, req dto.CreateLocationRequest) (*models.Location, error) {
	location := req.ToModel()
	hotelIDs := uniqueIDs(req.Hotels)
	restaurantIDs := uniqueIDs(req.Restaurants)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureAllExist(tx, &models.Hotel{}, hotelIDs, "hotel"); err != nil {
			return err
		}
		if err := ensureAllExist(tx, &models.Restaurant{}, restaurantIDs, "restaurant"); err != nil {
			return err
		}

		if err := tx.Create(&location).Error; err != nil {
			return apperrors.NewInternalError("failed to create location", err)
		}

		if len(hotelIDs) > 0 {
			links := make([]models.LocationHotel, 0, len(hotelIDs))
			for _, hid := range hotelIDs {
				links = append(links, models.LocationHotel{LocationID: location.ID, HotelID: hid})
			}
			if err := tx.Create(&links).Error; err != nil {
				return apperrors.NewInternalError("failed to link hotels", err)
			}
		}
		if len(restaurantIDs) > 0 {
			links := make([]models.LocationRestaurant, 0, len(restaurantIDs))
			for _, rid := range restaurantIDs {
				links = append(links, models.LocationRestaurant{LocationID: location.ID, RestaurantID: rid})
			}
			if err := tx.Create(&links).Error; err != nil {
				return apperrors.NewInternalError("failed to link restaurants", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate()
	log.Ctx(ctx).Info().Uint("location_id", location.ID).Str("name", location.Name).Msg("location created")
	return &location, nil
}

// Update applies a partial update. Rating is not updatable here.
func (s *LocationService) Update(ctx context.Context, id uint, req dto.UpdateLocationRequest) (*models.Location, error) {
	db := s.DB.WithContext(ctx)

	var location models.Location
	if err := db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Location not found")
		}
		return nil, apperrors.NewInternalError("failed to load location", err)
	}

	if updates := req.Updates(); len(updates) > 0 {
		if err := db.Model(&location).Updates(updates).Error; err != nil {
			return nil, apperrors.NewInternalError("failed to update location", err)
		}
		if err := db.First(&location, id).Error; err != nil {
			return nil, apperrors.NewInternalError("failed to reload location", err)
		}
		s.invalidate(id)
	}
	return &location, nil
}

// Delete removes the location and its hotel/restaurant links. Reviews and
// reservations referencing it are kept. A missing id yields nil, nil.
func (s *LocationService) Delete(ctx context.Context, id uint) (*models.Location, error) {
	var deleted *models.Location
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var location models.Location
		if err := tx.First(&location, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return apperrors.NewInternalError("failed to load location", err)
		}
		if err := tx.Where("location_id = ?", id).Delete(&models.LocationHotel{}).Error; err != nil {
			return apperrors.NewInternalError("failed to unlink hotels", err)
		}
		if err := tx.Where("location_id = ?", id).Delete(&models.LocationRestaurant{}).Error; err != nil {
			return apperrors.NewInternalError("failed to unlink restaurants", err)
		}
		if err := tx.Delete(&location).Error; err != nil {
			return apperrors.NewInternalError("failed to delete location", err)
		}
		deleted = &location
		return nil
	})
	if err != nil {
		return nil, err
	}

	if deleted != nil {
		s.invalidate(id)
		log.Ctx(ctx).Info().Uint("location_id", id).Msg("location deleted")
	}
	return deleted, nil
}

func (s *LocationService) invalidate(ids ...uint) {
	if s.Cache != nil {
		s.Cache.Invalidate(ids...)
	}
}

// ensureAllExist fails with a validation error when any id has no row.
func ensureAllExist(tx *gorm.DB, model any, ids []uint, kind string) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(model).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return apperrors.NewInternalError("failed to check "+kind+" references", err)
	}
	if count != int64(len(ids)) {
		return apperrors.NewValidationError(fmt.Sprintf("unknown %s reference", kind))
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
