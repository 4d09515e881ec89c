package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"tourism-backend/apperrors"
	"tourism-backend/dto"
	"tourism-backend/models"
	"tourism-backend/utils"
)

const errInvalidCredentials = "invalid credentials"

type AuthService struct {
	DB     *gorm.DB
	Tokens *utils.TokenManager
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenManager) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

// LoginResult is returned to the client after a successful sign in.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	user := req.ToModel()
	db := s.DB.WithContext(ctx)

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return nil, apperrors.NewInternalError("failed to check email", err)
	}
	if count > 0 {
		return nil, apperrors.NewConflictError("Email already exists!")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}
	user.Password = hash

	if err := db.Create(&user).Error; err != nil {
		// lost a race with a concurrent sign up for the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflictError("Email already exists!")
		}
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	log.Ctx(ctx).Info().Uint("user_id", user.ID).Msg("user registered")
	return &user, nil
}

// Login checks the credentials and issues a session token. Unknown email
// and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*LoginResult, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", dto.NormalizeEmail(req.Email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewUnauthorizedError(errInvalidCredentials)
		}
		return nil, apperrors.NewInternalError("failed to load user", err)
	}

	if !utils.IsBcryptHash(user.Password) || !utils.CheckPasswordHash(req.Password, user.Password) {
		log.Ctx(ctx).Warn().Uint("user_id", user.ID).Msg("login rejected")
		return nil, apperrors.NewUnauthorizedError(errInvalidCredentials)
	}

	token, err := s.Tokens.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to sign token", err)
	}
	return &LoginResult{Token: token, User: &user}, nil
}

// Me returns the user behind a validated token.
func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewUnauthorizedError("user no longer exists")
		}
		return nil, apperrors.NewInternalError("failed to load user", err)
	}
	return &user, nil
}
