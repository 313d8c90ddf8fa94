package domain

import "time"

// User is an API account that can request simulations.
type User struct {
	ID           int64     `json:"userId"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
