package corpus

import (
	"fmt"

	"github.com/mesh-intelligence/lambent/pkg/lambda"
	"github.com/mesh-intelligence/lambent/pkg/types"
)

// Manager builds corpus examples from expressions and persists them
// through an Archive. The archive must be attached before use; the
// Manager never attaches or detaches it.
type Manager struct {
	archive types.Archive
}

// NewManager creates a Manager over the given archive.
func NewManager(archive types.Archive) *Manager {
	return &Manager{archive: archive}
}

// Add renders, infers, and analyzes expr under ctx, then stores the
// resulting example. Inference failure is not an error here: the example
// is stored with its typing error text recorded and an empty type.
// An empty source defaults to "user".
func (m *Manager) Add(name, category, source string, expr lambda.Expr, ctx lambda.Context) (*types.Example, error) {
	if expr == nil {
		return nil, types.ErrInvalidExpr
	}
	if source == "" {
		source = types.SourceUser
	}

	e := &types.Example{
		Name:       name,
		Category:   category,
		Source:     source,
		ExprText:   expr.String(),
		Patterns:   ExtractPatterns(expr),
		Complexity: Complexity(expr),
	}

	if inferred, err := lambda.Infer(expr, ctx); err != nil {
		e.InferError = err.Error()
	} else {
		e.TypeText = inferred.String()
	}

	id, err := m.archive.SaveExample(e)
	if err != nil {
		return nil, fmt.Errorf("saving example %q: %w", name, err)
	}
	e.ExampleID = id
	return e, nil
}

// Get returns the stored example with the given ID.
func (m *Manager) Get(id string) (*types.Example, error) {
	return m.archive.GetExample(id)
}

// List returns all stored examples, newest first.
func (m *Manager) List() ([]*types.Example, error) {
	return m.archive.ListExamples()
}

// Search returns the stored examples matching the filter.
func (m *Manager) Search(filter types.Filter) ([]*types.Example, error) {
	return m.archive.SearchExamples(filter)
}

// Delete removes the stored example with the given ID.
func (m *Manager) Delete(id string) error {
	return m.archive.DeleteExample(id)
}

// Export writes the whole corpus to a JSONL file. Returns the number of
// exported examples.
func (m *Manager) Export(path string) (int, error) {
	return m.archive.ExportJSONL(path)
}

// Import loads examples from a JSONL file into the corpus. Returns the
// number of imported examples.
func (m *Manager) Import(path string) (int, error) {
	return m.archive.ImportJSONL(path)
}
