package dto

import (
	"strings"

	"tourism-backend/models"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required,notblank"`
	Phone    string `json:"phone" binding:"required,notblank"`
	Address  string `json:"address"`
	Image    string `json:"image" binding:"omitempty,url"`
	Bio      string `json:"bio"`
}

// ToModel returns the user without a password; the auth service sets the hash.
func (r RegisterRequest) ToModel() models.User {
	return models.User{
		Email:    NormalizeEmail(r.Email),
		Username: strings.TrimSpace(r.Username),
		Phone:    strings.TrimSpace(r.Phone),
		Address:  strings.TrimSpace(r.Address),
		Image:    strings.TrimSpace(r.Image),
		Bio:      strings.TrimSpace(r.Bio),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
