package http

import (
	"encoding/json"
	"net/http"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/bleep241/event-booker/internal/graph"
)

// writeResult encodes an executed result as the response envelope. Domain
// failures live inside the envelope's errors list; the transport status
// stays 200 for any request that was executed.
func writeResult(w http.ResponseWriter, result *graph.Result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

// writeRequestError reports a request that never reached execution (bad
// envelope, oversized body) using the same envelope shape.
func writeRequestError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(graph.Result{
		Errors: gqlerror.List{{Message: message}},
	})
}
