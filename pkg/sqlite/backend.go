// Package sqlite provides the public API for the SQLite corpus backend.
// It exposes the factory function for creating backends while keeping
// implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/lambent/internal/sqlite"
	"github.com/mesh-intelligence/lambent/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".lambent-db",
//	})
//	defer backend.Detach()
func NewBackend() types.Archive {
	return sqlite.NewBackend()
}
