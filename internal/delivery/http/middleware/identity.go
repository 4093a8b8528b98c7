package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const callerIDKey contextKey = "callerID"

// SetCallerID returns a context carrying the caller identity.
func SetCallerID(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, callerIDKey, callerID)
}

// CallerIDFromContext returns the caller identity from the context, if present.
func CallerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callerIDKey).(string)
	return id, ok && id != ""
}

// CallerIdentity attaches a caller identity to every request: the
// X-Caller-Id header when present, otherwise defaultCallerID. There is no
// authentication yet; this only makes the identity an explicit value the
// mutation pipelines receive instead of a constant buried inside them.
func CallerIdentity(defaultCallerID string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerID := strings.TrimSpace(r.Header.Get("X-Caller-Id"))
		if callerID == "" {
			callerID = defaultCallerID
		}
		if callerID != "" {
			r = r.WithContext(SetCallerID(r.Context(), callerID))
		}
		next.ServeHTTP(w, r)
	})
}
