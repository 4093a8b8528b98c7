package domain

import (
	"context"
	"time"
)

// Event represents a bookable event created by a user.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"date"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID, CreatorID, and
// the timestamps are set by the creation pipeline.
func NewEvent(title, description string, price float64, date time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Price:       price,
		Date:        date,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	// GetByIDs fetches the subset of events whose id is in ids. Ids with no
	// matching row are omitted from the result, not reported as errors.
	GetByIDs(ctx context.Context, ids []string) ([]*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event creation and lookup.
type EventService interface {
	// Create persists the event on behalf of ownerID and links it to the
	// owner's created-events list. The two writes are not atomic.
	Create(ctx context.Context, event *Event, ownerID string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Event, error)
}
