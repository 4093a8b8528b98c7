package graph

import (
	"context"
	"log/slog"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
)

// RootResolver produces the root entities for the declared operations.
type RootResolver interface {
	Events(ctx context.Context) ([]*Event, error)
	CreateEvent(ctx context.Context, input EventInput) (*Event, error)
	CreateUser(ctx context.Context, input UserInput) (*User, error)
}

// Result is the response envelope produced by one executed request.
type Result struct {
	Data   map[string]any `json:"data"`
	Errors gqlerror.List  `json:"errors,omitempty"`
}

// Executor validates a request against the schema and walks its selection
// set over the root entities, dereferencing relation handles only where the
// selection descends into them.
type Executor struct {
	schema *ast.Schema
	roots  RootResolver
	loader Loader
	logger *slog.Logger
}

func NewExecutor(roots RootResolver, loader Loader, logger *slog.Logger) *Executor {
	return &Executor{
		schema: Schema(),
		roots:  roots,
		loader: loader,
		logger: logger,
	}
}

// Execute runs one request. Validation failures return before resolution;
// resolution failures surface in Result.Errors at the failing field's path
// while sibling fields still resolve.
func (e *Executor) Execute(ctx context.Context, query, operationName string, variables map[string]any) *Result {
	doc, gerrs := gqlparser.LoadQuery(e.schema, query)
	if len(gerrs) > 0 {
		return &Result{Errors: gerrs}
	}

	op := doc.Operations.ForName(operationName)
	if op == nil {
		if operationName == "" {
			return &Result{Errors: gqlerror.List{gqlerror.Errorf("operation name required when the document defines multiple operations")}}
		}
		return &Result{Errors: gqlerror.List{gqlerror.Errorf("operation %q not found", operationName)}}
	}

	vars, err := validator.VariableValues(e.schema, op, variables)
	if err != nil {
		return &Result{Errors: gqlerror.List{gqlerror.WrapPath(nil, err)}}
	}

	req := &request{
		doc:    doc,
		vars:   vars,
		loader: newCachedLoader(e.loader),
		logger: e.logger,
	}

	switch op.Operation {
	case ast.Query:
		return &Result{Data: e.executeQuery(ctx, req, op), Errors: req.errs}
	case ast.Mutation:
		return &Result{Data: e.executeMutation(ctx, req, op), Errors: req.errs}
	default:
		return &Result{Errors: gqlerror.List{gqlerror.Errorf("unsupported operation %q", op.Operation)}}
	}
}

func (e *Executor) executeQuery(ctx context.Context, req *request, op *ast.OperationDefinition) map[string]any {
	data := make(map[string]any)
	for _, f := range req.collectFields("Query", op.SelectionSet) {
		name := responseName(f)
		path := ast.Path{ast.PathName(name)}
		switch f.Name {
		case "__typename":
			data[name] = "Query"
		case "events":
			events, err := e.roots.Events(ctx)
			if err != nil {
				req.fail(path, err)
				data[name] = nil
				continue
			}
			data[name] = req.resolveEventList(ctx, events, f.SelectionSet, path)
		}
	}
	return data
}

func (e *Executor) executeMutation(ctx context.Context, req *request, op *ast.OperationDefinition) map[string]any {
	data := make(map[string]any)
	// Mutation roots run serially in selection order.
	for _, f := range req.collectFields("Mutation", op.SelectionSet) {
		name := responseName(f)
		path := ast.Path{ast.PathName(name)}
		switch f.Name {
		case "__typename":
			data[name] = "Mutation"
		case "createEvent":
			input, err := req.eventInputArg(f)
			if err != nil {
				req.fail(path, err)
				data[name] = nil
				continue
			}
			event, err := e.roots.CreateEvent(ctx, input)
			if err != nil {
				req.fail(path, err)
				data[name] = nil
				continue
			}
			data[name] = req.resolveEvent(ctx, event, f.SelectionSet, path)
		case "createUser":
			input, err := req.userInputArg(f)
			if err != nil {
				req.fail(path, err)
				data[name] = nil
				continue
			}
			user, err := e.roots.CreateUser(ctx, input)
			if err != nil {
				req.fail(path, err)
				data[name] = nil
				continue
			}
			data[name] = req.resolveUser(ctx, user, f.SelectionSet, path)
		}
	}
	return data
}
