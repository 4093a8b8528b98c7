package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/bleep241/event-booker/internal/domain"
)

// dateLayout renders timestamps as ISO-8601 with millisecond precision,
// always in UTC.
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

// request holds the state of one executing request: the parsed document
// (for fragment lookup), coerced variables, the request-scoped loader, and
// the errors accumulated so far.
type request struct {
	doc    *ast.QueryDocument
	vars   map[string]any
	loader Loader
	logger *slog.Logger
	errs   gqlerror.List
}

func responseName(f *ast.Field) string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// collectFields flattens a selection set into its concrete fields,
// expanding fragment spreads and inline fragments whose type condition
// matches typeName.
func (r *request) collectFields(typeName string, sels ast.SelectionSet) []*ast.Field {
	return r.collectFieldsImpl(typeName, sels, map[string]bool{})
}

func (r *request) collectFieldsImpl(typeName string, sels ast.SelectionSet, visited map[string]bool) []*ast.Field {
	var fields []*ast.Field
	for _, sel := range sels {
		switch s := sel.(type) {
		case *ast.Field:
			if !r.shouldInclude(s.Directives) {
				continue
			}
			fields = append(fields, s)
		case *ast.InlineFragment:
			if !r.shouldInclude(s.Directives) {
				continue
			}
			if s.TypeCondition != "" && s.TypeCondition != typeName {
				continue
			}
			fields = append(fields, r.collectFieldsImpl(typeName, s.SelectionSet, visited)...)
		case *ast.FragmentSpread:
			if !r.shouldInclude(s.Directives) || visited[s.Name] {
				continue
			}
			visited[s.Name] = true
			frag := r.doc.Fragments.ForName(s.Name)
			if frag == nil || (frag.TypeCondition != "" && frag.TypeCondition != typeName) {
				continue
			}
			fields = append(fields, r.collectFieldsImpl(typeName, frag.SelectionSet, visited)...)
		}
	}
	return fields
}

// shouldInclude evaluates @skip and @include.
func (r *request) shouldInclude(directives ast.DirectiveList) bool {
	if d := directives.ForName("skip"); d != nil {
		if v, err := d.Arguments.ForName("if").Value.Value(r.vars); err == nil && v == true {
			return false
		}
	}
	if d := directives.ForName("include"); d != nil {
		if v, err := d.Arguments.ForName("if").Value.Value(r.vars); err == nil && v != true {
			return false
		}
	}
	return true
}

// fail records an error at the given response position. Storage-level
// failures are logged in full and reported with a generic message.
func (r *request) fail(path ast.Path, err error) {
	code := errorCode(err)
	msg := err.Error()
	if code == codeInternal {
		if r.logger != nil {
			r.logger.Error("resolution failed", "path", path.String(), "error", err)
		}
		msg = "internal server error"
	}
	r.errs = append(r.errs, &gqlerror.Error{
		Message:    msg,
		Path:       path,
		Extensions: map[string]any{"code": code},
	})
}

func childPath(path ast.Path, elem ast.PathElement) ast.Path {
	out := make(ast.Path, 0, len(path)+1)
	out = append(out, path...)
	return append(out, elem)
}

func (r *request) resolveEventList(ctx context.Context, events []*Event, sels ast.SelectionSet, path ast.Path) []any {
	out := make([]any, len(events))
	for i, ev := range events {
		out[i] = r.resolveEvent(ctx, ev, sels, childPath(path, ast.PathIndex(i)))
	}
	return out
}

// resolveEvent materializes exactly the selected fields of an event.
// Scalars come straight off the entity; the creator relation is fetched
// only when the selection names it.
func (r *request) resolveEvent(ctx context.Context, ev *Event, sels ast.SelectionSet, path ast.Path) map[string]any {
	out := make(map[string]any)
	for _, f := range r.collectFields("Event", sels) {
		name := responseName(f)
		fpath := childPath(path, ast.PathName(name))
		switch f.Name {
		case "__typename":
			out[name] = "Event"
		case "id":
			out[name] = ev.ID
		case "title":
			out[name] = ev.Title
		case "description":
			out[name] = ev.Description
		case "price":
			out[name] = ev.Price
		case "date":
			out[name] = ev.Date.UTC().Format(dateLayout)
		case "creator":
			if ev.Creator.Empty() {
				out[name] = nil
				continue
			}
			user, err := r.loader.UserByID(ctx, ev.Creator.ID)
			if err != nil {
				r.fail(fpath, err)
				out[name] = nil
				continue
			}
			if user == nil {
				// Dangling reference: the creator must exist at read time.
				r.fail(fpath, fmt.Errorf("%w: event creator %s", domain.ErrUserNotFound, ev.Creator.ID))
				out[name] = nil
				continue
			}
			out[name] = r.resolveUser(ctx, user, f.SelectionSet, fpath)
		}
	}
	return out
}

// resolveUser materializes exactly the selected fields of a user. The
// password field resolves to null unconditionally; the createdEvents
// relation is fetched only when selected, and a handle with no keys
// yields an empty list without a fetch.
func (r *request) resolveUser(ctx context.Context, u *User, sels ast.SelectionSet, path ast.Path) map[string]any {
	out := make(map[string]any)
	for _, f := range r.collectFields("User", sels) {
		name := responseName(f)
		fpath := childPath(path, ast.PathName(name))
		switch f.Name {
		case "__typename":
			out[name] = "User"
		case "id":
			out[name] = u.ID
		case "email":
			out[name] = u.Email
		case "password":
			out[name] = nil
		case "createdEvents":
			if u.CreatedEvents.Empty() {
				out[name] = []any{}
				continue
			}
			events, err := r.loader.EventsByIDs(ctx, u.CreatedEvents.IDs)
			if err != nil {
				r.fail(fpath, err)
				out[name] = nil
				continue
			}
			out[name] = r.resolveEventList(ctx, events, f.SelectionSet, fpath)
		}
	}
	return out
}
