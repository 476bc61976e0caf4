package programs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lambent/pkg/lambda"
)

func testProgram(name string) Program {
	return Program{
		Name:     name,
		Category: CategoryBasics,
		Build: func() (lambda.Expr, lambda.Context) {
			return lambda.Var{Name: "x"}, lambda.NewContext().Extend("x", lambda.Int)
		},
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testProgram("sample")))

	p, err := r.Get("sample")
	require.NoError(t, err)
	assert.Equal(t, "sample", p.Name)

	expr, ctx := p.Build()
	got, err := lambda.Infer(expr, ctx)
	require.NoError(t, err)
	assert.True(t, lambda.Int.Equal(got))
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testProgram("sample")))

	err := r.Register(testProgram("sample"))
	assert.Error(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryRejectsInvalidPrograms(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register(Program{Name: "", Build: testProgram("x").Build}))
	assert.ErrorIs(t, r.Register(Program{Name: "no-build"}), ErrNilBuild)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryGetMissing(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("missing")
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.Register(testProgram(name)))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}
