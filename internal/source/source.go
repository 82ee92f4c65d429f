// Package source defines the data-fetch collaborator the todo container
// loads its initial records from.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/idilsaglam/todolist/internal/model"
)

// Source returns the full todo collection.
// The container calls Fetch exactly once per mount.
type Source interface {
	Fetch(ctx context.Context) ([]model.Record, error)
}

// Func adapts an ordinary function to Source.
type Func func(ctx context.Context) ([]model.Record, error)

// Fetch implements Source.
func (f Func) Fetch(ctx context.Context) ([]model.Record, error) { return f(ctx) }

// Static returns a Source that always yields a copy of records.
func Static(records ...model.Record) Source {
	return Func(func(context.Context) ([]model.Record, error) {
		out := make([]model.Record, len(records))
		copy(out, records)
		return out, nil
	})
}

// ErrMalformed is returned when the payload is not a JSON array of records.
var ErrMalformed = errors.New("malformed todo payload")

// StatusError reports a non-2xx response from the endpoint.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d (%s)", e.Code, e.Status)
}
