package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bleep241/event-booker/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, userRepo domain.UserRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

// Create inserts the event and then links it to its owner's created-events
// list. The two writes are separate statements with no transaction around
// them; when the second step cannot happen the inserted event is deleted
// again so no orphan row survives the failure.
func (s *eventService) Create(ctx context.Context, event *domain.Event, ownerID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if ownerID == "" {
		return nil, fmt.Errorf("%w: event owner is required", domain.ErrInvalidInput)
	}
	if event.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if event.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}

	event.CreatorID = ownerID
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.compensate(ctx, event.ID)
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("load event owner: %w", err)
	}

	if err := s.userRepo.AppendCreatedEvent(ctx, ownerID, event.ID); err != nil {
		s.compensate(ctx, event.ID)
		return nil, fmt.Errorf("link event to owner: %w", err)
	}

	return event, nil
}

// compensate removes an event row whose owner link could not be written.
// A failed delete leaves the orphan in place; there is no retry.
func (s *eventService) compensate(ctx context.Context, eventID string) {
	_ = s.eventRepo.Delete(ctx, eventID)
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get events by ids: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
