package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Error variables shared between repositories, services and handlers.
var (
	ErrEmailAndNameRequired = errors.New("email and name are required")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
)

// UserDB represents a user record in the database
type UserDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key, generated by the service
	Email     string    `json:"email" db:"email"`           // Unique email
	Name      string    `json:"name" db:"name"`             // Display name
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp (UTC)
}
