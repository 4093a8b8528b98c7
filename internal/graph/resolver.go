package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/bleep241/event-booker/internal/delivery/http/middleware"
	"github.com/bleep241/event-booker/internal/domain"
)

// Resolver produces root entities from the domain services and implements
// the Loader used to dereference relation handles.
type Resolver struct {
	events domain.EventService
	users  domain.UserService
}

func NewResolver(events domain.EventService, users domain.UserService) *Resolver {
	return &Resolver{events: events, users: users}
}

func (r *Resolver) Events(ctx context.Context) ([]*Event, error) {
	events, err := r.events.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Event, len(events))
	for i, e := range events {
		out[i] = eventModel(e)
	}
	return out, nil
}

func (r *Resolver) CreateEvent(ctx context.Context, input EventInput) (*Event, error) {
	callerID, ok := middleware.CallerIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: missing caller identity", domain.ErrInvalidInput)
	}
	event := domain.NewEvent(input.Title, input.Description, input.Price, input.Date)
	created, err := r.events.Create(ctx, event, callerID)
	if err != nil {
		return nil, err
	}
	return eventModel(created), nil
}

func (r *Resolver) CreateUser(ctx context.Context, input UserInput) (*User, error) {
	user, err := r.users.Register(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	return userModel(user), nil
}

// UserByID implements Loader. Absence is reported as (nil, nil).
func (r *Resolver) UserByID(ctx context.Context, id string) (*User, error) {
	user, err := r.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userModel(user), nil
}

// EventsByIDs implements Loader. Missing subset members are omitted.
func (r *Resolver) EventsByIDs(ctx context.Context, ids []string) ([]*Event, error) {
	events, err := r.events.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*Event, len(events))
	for i, e := range events {
		out[i] = eventModel(e)
	}
	return out, nil
}

// eventModel converts a stored event into its response shape. The creator
// relation becomes a handle holding only the raw key.
func eventModel(e *domain.Event) *Event {
	return &Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Price:       e.Price,
		Date:        e.Date,
		Creator:     UserRef{ID: e.CreatorID},
	}
}

// userModel converts a stored user into its response shape. The password
// hash is dropped here and cannot reappear downstream; created events
// become a handle over the raw id list.
func userModel(u *domain.User) *User {
	return &User{
		ID:            u.ID,
		Email:         u.Email,
		CreatedEvents: EventSetRef{IDs: u.CreatedEventIDs},
	}
}
