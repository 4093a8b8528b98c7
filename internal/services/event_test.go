package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/bleep241/event-booker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	order     []string
	nextID    int
	createErr error
	listErr   error
	deleteErr error
	deleted   []string
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = "event-" + strconv.Itoa(f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Event, 0, len(f.order))
	for _, id := range f.order {
		if e, ok := f.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := f.byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func draftEvent() *domain.Event {
	return domain.NewEvent("Talk", "d", 10.5, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates event and links it to the owner", func(t *testing.T) {
		eventRepo := newFakeEventRepo()
		userRepo := newFakeUserRepo()
		userRepo.add(&domain.User{ID: "owner-1", Email: "a@b.com", CreatedEventIDs: []string{}})
		svc := NewEventService(eventRepo, userRepo, 5*time.Second)

		created, err := svc.Create(ctx, draftEvent(), "owner-1")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "owner-1", created.CreatorID)
		assert.Equal(t, []string{created.ID}, userRepo.byID["owner-1"].CreatedEventIDs, "owner list gains the new id")
	})

	t.Run("second event appends to the owner list in order", func(t *testing.T) {
		eventRepo := newFakeEventRepo()
		userRepo := newFakeUserRepo()
		userRepo.add(&domain.User{ID: "owner-1", Email: "a@b.com", CreatedEventIDs: []string{}})
		svc := NewEventService(eventRepo, userRepo, 5*time.Second)

		first, err := svc.Create(ctx, draftEvent(), "owner-1")
		require.NoError(t, err)
		second, err := svc.Create(ctx, draftEvent(), "owner-1")
		require.NoError(t, err)
		assert.Equal(t, []string{first.ID, second.ID}, userRepo.byID["owner-1"].CreatedEventIDs)
	})

	t.Run("missing owner fails and the orphan event is deleted again", func(t *testing.T) {
		// The event insert happens before the owner lookup; the pipeline
		// compensates by deleting the row it just wrote. That compensation,
		// not keeping the orphan, is the decided behavior here.
		eventRepo := newFakeEventRepo()
		userRepo := newFakeUserRepo()
		svc := NewEventService(eventRepo, userRepo, 5*time.Second)

		_, err := svc.Create(ctx, draftEvent(), "ghost-owner")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Empty(t, eventRepo.byID, "no orphan row survives")
		assert.Equal(t, []string{"event-1"}, eventRepo.deleted)
	})

	t.Run("link failure also compensates", func(t *testing.T) {
		eventRepo := newFakeEventRepo()
		userRepo := newFakeUserRepo()
		userRepo.add(&domain.User{ID: "owner-1", Email: "a@b.com"})
		userRepo.appendErr = errors.New("connection reset")
		svc := NewEventService(eventRepo, userRepo, 5*time.Second)

		_, err := svc.Create(ctx, draftEvent(), "owner-1")
		require.Error(t, err)
		assert.Empty(t, eventRepo.byID)
	})

	t.Run("failed compensation leaves the orphan in place", func(t *testing.T) {
		eventRepo := newFakeEventRepo()
		eventRepo.deleteErr = errors.New("connection reset")
		userRepo := newFakeUserRepo()
		svc := NewEventService(eventRepo, userRepo, 5*time.Second)

		_, err := svc.Create(ctx, draftEvent(), "ghost-owner")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Len(t, eventRepo.byID, 1, "orphan stays when the delete fails; no retry")
	})

	t.Run("missing owner id", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), newFakeUserRepo(), 5*time.Second)
		_, err := svc.Create(ctx, draftEvent(), "")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing title", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), newFakeUserRepo(), 5*time.Second)
		e := draftEvent()
		e.Title = ""
		_, err := svc.Create(ctx, e, "owner-1")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("storage error during owner lookup is not a not-found", func(t *testing.T) {
		eventRepo := newFakeEventRepo()
		userRepo := newFakeUserRepo()
		userRepo.getErr = errors.New("connection refused")
		svc := NewEventService(eventRepo, userRepo, 5*time.Second)

		_, err := svc.Create(ctx, draftEvent(), "owner-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()

	eventRepo := newFakeEventRepo()
	userRepo := newFakeUserRepo()
	userRepo.add(&domain.User{ID: "owner-1", Email: "a@b.com"})
	svc := NewEventService(eventRepo, userRepo, 5*time.Second)

	_, err := svc.Create(ctx, draftEvent(), "owner-1")
	require.NoError(t, err)

	events, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventService_GetByIDs(t *testing.T) {
	ctx := context.Background()

	eventRepo := newFakeEventRepo()
	userRepo := newFakeUserRepo()
	userRepo.add(&domain.User{ID: "owner-1", Email: "a@b.com"})
	svc := NewEventService(eventRepo, userRepo, 5*time.Second)

	created, err := svc.Create(ctx, draftEvent(), "owner-1")
	require.NoError(t, err)

	events, err := svc.GetByIDs(ctx, []string{created.ID, "nope"})
	require.NoError(t, err)
	require.Len(t, events, 1, "missing members are omitted")
	assert.Equal(t, created.ID, events[0].ID)
}
