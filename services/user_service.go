package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tourism-backend/apperrors"
	"tourism-backend/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := s.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	return users, nil
}

// Get returns nil when no user has that id.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewInternalError("failed to load user", err)
	}
	return &user, nil
}
