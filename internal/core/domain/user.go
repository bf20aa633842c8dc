package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Usuario models an individual visitor/adopter account.
type Usuario struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Senha     string    `json:"-"` // bcrypt digest, never exposed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
