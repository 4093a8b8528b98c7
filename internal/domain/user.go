package domain

import (
	"context"
	"time"
)

// User represents a registered user. PasswordHash never leaves the service
// layer; the delivery side exposes users through a shape without it.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	CreatedEventIDs []string  `json:"created_event_ids"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is set by the
// repository on create.
func NewUser(email, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:           email,
		PasswordHash:    passwordHash,
		CreatedEventIDs: []string{},
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// PasswordHasher handles one-way password hashing and verification.
type PasswordHasher interface {
	Hash(password string) (hash string, err error)
	Compare(hash, password string) error
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// AppendCreatedEvent adds eventID to the end of the user's
	// created-events list.
	AppendCreatedEvent(ctx context.Context, userID, eventID string) error
}

// UserService defines the business logic for user registration and lookup.
type UserService interface {
	Register(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
