package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/bleep241/event-booker/internal/graph"
)

const defaultMaxBodyBytes = 1 << 20

// GraphQLRequest is the request envelope for the single query endpoint.
type GraphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// GraphQLController serves the single textual-query endpoint.
type GraphQLController struct {
	exec         *graph.Executor
	logger       *slog.Logger
	maxBodyBytes int64
}

func NewGraphQLController(exec *graph.Executor, logger *slog.Logger) *GraphQLController {
	return &GraphQLController{
		exec:         exec,
		logger:       logger,
		maxBodyBytes: defaultMaxBodyBytes,
	}
}

// Handle handles POST /graphql
func (c *GraphQLController) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, c.maxBodyBytes+1))
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	defer r.Body.Close()
	if int64(len(body)) > c.maxBodyBytes {
		writeRequestError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	var req GraphQLRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeRequestError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		writeRequestError(w, http.StatusBadRequest, "missing 'query'")
		return
	}

	result := c.exec.Execute(r.Context(), req.Query, req.OperationName, req.Variables)
	if len(result.Errors) > 0 {
		c.logger.Debug("request completed with errors", "errors", len(result.Errors))
	}
	writeResult(w, result)
}
