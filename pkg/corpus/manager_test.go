package corpus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lambent/pkg/lambda"
	"github.com/mesh-intelligence/lambent/pkg/types"
)

// fakeArchive is an in-memory Archive for Manager tests.
type fakeArchive struct {
	saved  map[string]*types.Example
	nextID int
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{saved: make(map[string]*types.Example)}
}

func (f *fakeArchive) Attach(types.Config) error { return nil }
func (f *fakeArchive) Detach() error             { return nil }

func (f *fakeArchive) SaveExample(e *types.Example) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	if e.ExampleID == "" {
		f.nextID++
		e.ExampleID = fmt.Sprintf("example-%d", f.nextID)
	}
	f.saved[e.ExampleID] = e
	return e.ExampleID, nil
}

func (f *fakeArchive) GetExample(id string) (*types.Example, error) {
	e, ok := f.saved[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return e, nil
}

func (f *fakeArchive) ListExamples() ([]*types.Example, error) {
	var out []*types.Example
	for _, e := range f.saved {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeArchive) SearchExamples(filter types.Filter) ([]*types.Example, error) {
	var out []*types.Example
	for _, e := range f.saved {
		if filter.Pattern != "" && !e.HasPattern(filter.Pattern) {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeArchive) DeleteExample(id string) error {
	if _, ok := f.saved[id]; !ok {
		return types.ErrNotFound
	}
	delete(f.saved, id)
	return nil
}

func (f *fakeArchive) ExportJSONL(string) (int, error) { return len(f.saved), nil }
func (f *fakeArchive) ImportJSONL(string) (int, error) { return 0, nil }

func TestManagerAddWellTyped(t *testing.T) {
	archive := newFakeArchive()
	m := NewManager(archive)

	identity := lambda.Lambda{Param: "x", ParamType: lambda.Int, Body: lambda.Var{Name: "x"}}
	e, err := m.Add("identity", "basics", "", identity, lambda.NewContext())
	require.NoError(t, err)

	assert.NotEmpty(t, e.ExampleID)
	assert.Equal(t, "identity", e.Name)
	assert.Equal(t, types.SourceUser, e.Source, "empty source defaults to user")
	assert.Equal(t, "(\\x: Int. x)", e.ExprText)
	assert.Equal(t, "(Int -> Int)", e.TypeText)
	assert.True(t, e.WellTyped())
	assert.Equal(t, []string{PatternLambda, PatternVariable}, e.Patterns)
	assert.Equal(t, 2, e.Complexity)
}

func TestManagerAddIllTyped(t *testing.T) {
	archive := newFakeArchive()
	m := NewManager(archive)

	e, err := m.Add("unbound", "errors", types.SourceBuiltin, lambda.Var{Name: "y"}, lambda.NewContext())
	require.NoError(t, err, "an ill-typed example is stored, not rejected")

	assert.False(t, e.WellTyped())
	assert.Empty(t, e.TypeText)
	assert.Equal(t, "unbound variable: y", e.InferError)
	assert.Equal(t, types.SourceBuiltin, e.Source)

	stored, err := m.Get(e.ExampleID)
	require.NoError(t, err)
	assert.Equal(t, e.InferError, stored.InferError)
}

func TestManagerAddNilExpr(t *testing.T) {
	m := NewManager(newFakeArchive())

	_, err := m.Add("nothing", "errors", "", nil, lambda.NewContext())
	assert.ErrorIs(t, err, types.ErrInvalidExpr)
}

func TestManagerAddRejectsEmptyName(t *testing.T) {
	m := NewManager(newFakeArchive())

	_, err := m.Add("", "basics", "", lambda.Var{Name: "x"}, lambda.NewContext())
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestManagerSearchDelegatesToArchive(t *testing.T) {
	archive := newFakeArchive()
	m := NewManager(archive)

	identity := lambda.Lambda{Param: "x", ParamType: lambda.Int, Body: lambda.Var{Name: "x"}}
	_, err := m.Add("identity", "basics", "", identity, lambda.NewContext())
	require.NoError(t, err)
	_, err = m.Add("effectful", "effects", "", lambda.Effectful{Effect: "IO", Inner: identity}, lambda.NewContext())
	require.NoError(t, err)

	got, err := m.Search(types.Filter{Pattern: PatternEffect})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "effectful", got[0].Name)

	got, err = m.Search(types.Filter{Category: "basics"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "identity", got[0].Name)
}

func TestManagerDelete(t *testing.T) {
	archive := newFakeArchive()
	m := NewManager(archive)

	e, err := m.Add("identity", "basics", "",
		lambda.Lambda{Param: "x", ParamType: lambda.Int, Body: lambda.Var{Name: "x"}}, lambda.NewContext())
	require.NoError(t, err)

	require.NoError(t, m.Delete(e.ExampleID))
	assert.ErrorIs(t, m.Delete(e.ExampleID), types.ErrNotFound)

	_, err = m.Get(e.ExampleID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
