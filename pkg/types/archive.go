package types

import "errors"

// Archive defines the interface for backend-agnostic corpus storage.
// Callers attach to a backend, operate on examples, and detach when done.
type Archive interface {
	// Attach connects the Archive to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrArchiveDetached.
	Detach() error

	// SaveExample creates or updates an example. A missing ExampleID means
	// create; the generated or existing ID is returned.
	SaveExample(e *Example) (string, error)

	// GetExample returns the example with the given ID.
	// Returns ErrNotFound if no such example exists.
	GetExample(id string) (*Example, error)

	// ListExamples returns all examples, newest first.
	ListExamples() ([]*Example, error)

	// SearchExamples returns the examples matching the filter, newest
	// first. A zero Filter matches everything.
	SearchExamples(filter Filter) ([]*Example, error)

	// DeleteExample removes the example with the given ID.
	// Returns ErrNotFound if no such example exists.
	DeleteExample(id string) error

	// ExportJSONL writes every example to path as one JSON object per
	// line, newest first. Returns the number of exported examples.
	ExportJSONL(path string) (int, error)

	// ImportJSONL loads examples from a JSONL file, skipping malformed
	// lines. Returns the number of imported examples.
	ImportJSONL(path string) (int, error)
}

// Filter selects examples in SearchExamples. Zero-valued fields are
// ignored; set fields combine with AND.
type Filter struct {
	Pattern       string // Require this structural pattern.
	Category      string // Require this category.
	MinComplexity int    // Inclusive lower bound; 0 means unbounded.
	MaxComplexity int    // Inclusive upper bound; 0 means unbounded.
	Limit         int    // Maximum results; 0 means no limit.
}

// Archive lifecycle and operation errors.
var (
	ErrArchiveDetached = errors.New("archive is detached")
	ErrAlreadyAttached = errors.New("archive is already attached")
	ErrNotFound        = errors.New("example not found")
	ErrInvalidID       = errors.New("example id must not be empty")
	ErrDuplicateName   = errors.New("example name already in use")
)
