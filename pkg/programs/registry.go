// Package programs provides a registry of named demonstration programs:
// prebuilt lambda calculus expressions paired with the contexts they are
// meant to be inferred under. Registries are explicit values passed to
// callers; there is no package-level mutable state.
package programs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mesh-intelligence/lambent/pkg/lambda"
)

// Program is a named, buildable demonstration expression. Build returns a
// fresh expression and the context to infer it under; programs that need
// no bindings return an empty context.
type Program struct {
	Name        string
	Description string
	Category    string
	Build       func() (lambda.Expr, lambda.Context)
}

// Registry errors.
var (
	ErrProgramNotFound = errors.New("program not found")
	ErrNilBuild        = errors.New("program build function must not be nil")
)

// Registry holds named programs. The zero value is not usable; create one
// with NewRegistry.
type Registry struct {
	programs map[string]Program
}

// NewRegistry returns an empty program registry.
func NewRegistry() *Registry {
	return &Registry{programs: make(map[string]Program)}
}

// Register adds a program to the registry. Duplicate names are rejected.
func (r *Registry) Register(p Program) error {
	if p.Name == "" {
		return errors.New("program name must not be empty")
	}
	if p.Build == nil {
		return ErrNilBuild
	}
	if _, exists := r.programs[p.Name]; exists {
		return fmt.Errorf("program %q already registered", p.Name)
	}
	r.programs[p.Name] = p
	return nil
}

// Get returns the program with the given name.
func (r *Registry) Get(name string) (Program, error) {
	p, ok := r.programs[name]
	if !ok {
		return Program{}, fmt.Errorf("%w: %s", ErrProgramNotFound, name)
	}
	return p, nil
}

// Names returns all registered program names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.programs))
	for name := range r.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered programs.
func (r *Registry) Len() int {
	return len(r.programs)
}
