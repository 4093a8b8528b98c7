package graph

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/bleep241/event-booker/internal/domain"
)

// EventInput is the normalized createEvent argument: price already numeric,
// date already a timestamp.
type EventInput struct {
	Title       string
	Description string
	Price       float64
	Date        time.Time
}

// UserInput is the createUser argument.
type UserInput struct {
	Email    string
	Password string
}

var dateInputLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

func (r *request) eventInputArg(f *ast.Field) (EventInput, error) {
	raw, err := argValue(f, "eventInput", r.vars)
	if err != nil {
		return EventInput{}, err
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return EventInput{}, fmt.Errorf("%w: eventInput must be an object", domain.ErrInvalidInput)
	}

	var in EventInput
	if in.Title, ok = fields["title"].(string); !ok {
		return EventInput{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if in.Description, ok = fields["description"].(string); !ok {
		return EventInput{}, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if in.Price, err = coercePrice(fields["price"]); err != nil {
		return EventInput{}, err
	}
	if in.Date, err = coerceDate(fields["date"]); err != nil {
		return EventInput{}, err
	}
	return in, nil
}

func (r *request) userInputArg(f *ast.Field) (UserInput, error) {
	raw, err := argValue(f, "userInput", r.vars)
	if err != nil {
		return UserInput{}, err
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return UserInput{}, fmt.Errorf("%w: userInput must be an object", domain.ErrInvalidInput)
	}

	var in UserInput
	if in.Email, ok = fields["email"].(string); !ok {
		return UserInput{}, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if in.Password, ok = fields["password"].(string); !ok {
		return UserInput{}, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	return in, nil
}

func argValue(f *ast.Field, name string, vars map[string]any) (any, error) {
	arg := f.Arguments.ForName(name)
	if arg == nil {
		return nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
	}
	v, err := arg.Value.Value(vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return v, nil
}

// coercePrice accepts any numeric representation a JSON body or a query
// literal can carry, including a numeric string.
func coercePrice(v any) (float64, error) {
	switch p := v.(type) {
	case float64:
		return p, nil
	case int64:
		return float64(p), nil
	case int:
		return float64(p), nil
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: price must be a number", domain.ErrInvalidInput)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: price must be a number", domain.ErrInvalidInput)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: price is required", domain.ErrInvalidInput)
	}
}

// coerceDate accepts RFC 3339 timestamps or bare dates.
func coerceDate(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q is not a valid timestamp", domain.ErrInvalidInput, s)
}
