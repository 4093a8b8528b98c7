package http

import (
	"net/http"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(graphqlController *GraphQLController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /graphql", graphqlController.Handle)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}
