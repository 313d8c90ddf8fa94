package dto

import (
	"time"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
)

// RegisterUserRequest is the payload to create an API account.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=60"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload to obtain an access token.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is an account without its credential material.
type UserResponse struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse carries a freshly signed access token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
