package graph

import "time"

// Event is the response-side shape of an event. Relation fields carry
// unevaluated references instead of loaded entities.
type Event struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Date        time.Time
	Creator     UserRef
}

// User is the response-side shape of a user. It deliberately has no
// password field: the stored hash cannot reach a response because this
// type cannot hold it. Selecting "password" always resolves to null.
type User struct {
	ID            string
	Email         string
	CreatedEvents EventSetRef
}

// UserRef is a relation handle: the raw key of a user, not the user
// itself. It is only dereferenced when a selection descends into the
// relation.
type UserRef struct {
	ID string
}

// Empty reports whether the handle points at nothing.
func (r UserRef) Empty() bool { return r.ID == "" }

// EventSetRef is a relation handle for an ordered set of events.
type EventSetRef struct {
	IDs []string
}

// Empty reports whether the handle holds no keys.
func (r EventSetRef) Empty() bool { return len(r.IDs) == 0 }
