package graph

import (
	"testing"
	"time"

	"github.com/bleep241/event-booker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"float", 10.5, 10.5, false},
		{"int64", int64(10), 10, false},
		{"numeric string", "10.5", 10.5, false},
		{"garbage string", "ten", 0, true},
		{"missing", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coercePrice(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceDate(t *testing.T) {
	t.Run("bare date", func(t *testing.T) {
		got, err := coerceDate("2020-01-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := coerceDate("2020-01-01T15:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 1, 1, 15, 30, 0, 0, time.UTC), got)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := coerceDate("next tuesday")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := coerceDate(nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
