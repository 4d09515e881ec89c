package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"tourism-backend/apperrors"
	"tourism-backend/cache"
	"tourism-backend/dto"
	"tourism-backend/models"
)

// HotelService and RestaurantService share the venue shape; the join
// table column differs.
type HotelService struct {
	DB    *gorm.DB
	Cache *cache.LocationCache
}

func NewHotelService(db *gorm.DB, c *cache.LocationCache) *HotelService {
	return &HotelService{DB: db, Cache: c}
}

func (s *HotelService) List(ctx context.Context) ([]models.Hotel, error) {
	hotels := make([]models.Hotel, 0)
	if err := s.DB.WithContext(ctx).Order("id").Find(&hotels).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list hotels", err)
	}
	return hotels, nil
}

func (s *HotelService) Create(ctx context.Context, req dto.CreateVenueRequest) (*models.Hotel, error) {
	hotel := req.ToHotel()
	if err := s.DB.WithContext(ctx).Create(&hotel).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to create hotel", err)
	}
	return &hotel, nil
}

func (s *HotelService) Delete(ctx context.Context, id uint) error {
	affected, err := deleteVenue(ctx, s.DB, &models.Hotel{}, &models.LocationHotel{}, "hotel_id", "Hotel", id)
	if err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.Invalidate(affected...)
	}
	log.Ctx(ctx).Info().Uint("hotel_id", id).Int("locations_unlinked", len(affected)).Msg("hotel deleted")
	return nil
}

type RestaurantService struct {
	DB    *gorm.DB
	Cache *cache.LocationCache
}

func NewRestaurantService(db *gorm.DB, c *cache.LocationCache) *RestaurantService {
	return &RestaurantService{DB: db, Cache: c}
}

func (s *RestaurantService) List(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := make([]models.Restaurant, 0)
	if err := s.DB.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list restaurants", err)
	}
	return restaurants, nil
}

func (s *RestaurantService) Create(ctx context.Context, req dto.CreateVenueRequest) (*models.Restaurant, error) {
	restaurant := req.ToRestaurant()
	if err := s.DB.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to create restaurant", err)
	}
	return &restaurant, nil
}

func (s *RestaurantService) Delete(ctx context.Context, id uint) error {
	affected, err := deleteVenue(ctx, s.DB, &models.Restaurant{}, &models.LocationRestaurant{}, "restaurant_id", "Restaurant", id)
	if err != nil {
		return err
	}
	if s.Cache != nil {
		s.Cache.Invalidate(affected...)
	}
	log.Ctx(ctx).Info().Uint("restaurant_id", id).Int("locations_unlinked", len(affected)).Msg("restaurant deleted")
	return nil
}

// deleteVenue removes a hotel/restaurant and its location links in one
// transaction, returning the ids of the locations that referenced it.
func deleteVenue(ctx context.Context, db *gorm.DB, venue any, link any, linkColumn, kind string, id uint) ([]uint, error) {
	var locationIDs []uint
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(venue, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError(kind + " not found")
			}
			return apperrors.NewInternalError("failed to load "+kind, err)
		}
		if err := tx.Model(link).Where(linkColumn+" = ?", id).Pluck("location_id", &locationIDs).Error; err != nil {
			return apperrors.NewInternalError("failed to load venue links", err)
		}
		if err := tx.Where(linkColumn+" = ?", id).Delete(link).Error; err != nil {
			return apperrors.NewInternalError("failed to unlink venue", err)
		}
		if err := tx.Delete(venue, id).Error; err != nil {
			return apperrors.NewInternalError("failed to delete venue", err)
		}
		return nil
	})
	return locationIDs, err
}
