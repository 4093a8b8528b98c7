package graph

import "context"

// Loader dereferences relation handles. Absence is not an error: UserByID
// returns (nil, nil) for an unknown id, and EventsByIDs omits ids with no
// matching record.
type Loader interface {
	UserByID(ctx context.Context, id string) (*User, error)
	EventsByIDs(ctx context.Context, ids []string) ([]*Event, error)
}

// cachedLoader memoizes lookups by (kind, id) for the lifetime of a single
// request, collapsing duplicate fetches inside one response. Each request
// starts with a fresh cache, so re-evaluating a handle in a later request
// re-issues the lookup. A nil map entry records a known-absent id.
type cachedLoader struct {
	next   Loader
	users  map[string]*User
	events map[string]*Event
}

func newCachedLoader(next Loader) *cachedLoader {
	return &cachedLoader{
		next:   next,
		users:  make(map[string]*User),
		events: make(map[string]*Event),
	}
}

func (c *cachedLoader) UserByID(ctx context.Context, id string) (*User, error) {
	if u, ok := c.users[id]; ok {
		return u, nil
	}
	u, err := c.next.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.users[id] = u
	return u, nil
}

func (c *cachedLoader) EventsByIDs(ctx context.Context, ids []string) ([]*Event, error) {
	var missing []string
	for _, id := range ids {
		if _, ok := c.events[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		fetched, err := c.next.EventsByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, id := range missing {
			c.events[id] = nil
		}
		for _, ev := range fetched {
			c.events[ev.ID] = ev
		}
	}
	out := make([]*Event, 0, len(ids))
	for _, id := range ids {
		if ev := c.events[id]; ev != nil {
			out = append(out, ev)
		}
	}
	return out, nil
}
