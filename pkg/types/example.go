package types

import (
	"errors"
	"time"
)

// Example sources. Built-in examples come from the demonstration program
// registry; user examples are added through the corpus manager.
const (
	SourceBuiltin = "builtin"
	SourceUser    = "user"
)

// Example is an analyzed lambda calculus program stored in the corpus.
// ExprText and TypeText are the deterministic renderings produced by the
// lambda package; InferError holds the typing error text when inference
// failed, in which case TypeText is empty. Ill-typed examples are kept —
// a corpus of typing failures is as useful as one of successes.
type Example struct {
	ExampleID  string    // UUID v7, generated on creation.
	Name       string    // Unique human-readable name (required).
	Category   string    // Free-form grouping label.
	Source     string    // One of the Source constants.
	ExprText   string    // Rendered expression (required).
	TypeText   string    // Rendered inferred type; empty if inference failed.
	InferError string    // Typing error text; empty if inference succeeded.
	Patterns   []string  // Sorted structural patterns (see pkg/corpus).
	Complexity int       // Expression node count.
	CreatedAt  time.Time // Timestamp of creation.
	UpdatedAt  time.Time // Timestamp of last modification.
}

// Entity validation errors.
var (
	ErrInvalidName = errors.New("example name must not be empty")
	ErrInvalidExpr = errors.New("example expression text must not be empty")
)

// Validate checks that the example carries the required fields.
func (e *Example) Validate() error {
	if e.Name == "" {
		return ErrInvalidName
	}
	if e.ExprText == "" {
		return ErrInvalidExpr
	}
	return nil
}

// WellTyped reports whether inference succeeded for this example.
func (e *Example) WellTyped() bool {
	return e.InferError == ""
}

// HasPattern reports whether the example carries the given pattern.
func (e *Example) HasPattern(pattern string) bool {
	for _, p := range e.Patterns {
		if p == pattern {
			return true
		}
	}
	return false
}
