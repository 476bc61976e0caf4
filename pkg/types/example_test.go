package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExampleValidate(t *testing.T) {
	tests := []struct {
		name    string
		example Example
		wantErr error
	}{
		{
			name: "valid example",
			example: Example{
				Name:     "identity",
				Category: "basics",
				ExprText: "(\\x: Int. x)",
				TypeText: "(Int -> Int)",
			},
		},
		{
			name: "ill-typed example is still valid",
			example: Example{
				Name:       "unbound",
				ExprText:   "y",
				InferError: "unbound variable: y",
			},
		},
		{
			name:    "missing name rejected",
			example: Example{ExprText: "x"},
			wantErr: ErrInvalidName,
		},
		{
			name:    "missing expression rejected",
			example: Example{Name: "empty"},
			wantErr: ErrInvalidExpr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.example.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExampleWellTyped(t *testing.T) {
	ok := Example{Name: "identity", ExprText: "x", TypeText: "Int"}
	assert.True(t, ok.WellTyped())

	bad := Example{Name: "unbound", ExprText: "y", InferError: "unbound variable: y"}
	assert.False(t, bad.WellTyped())
}

func TestExampleHasPattern(t *testing.T) {
	e := Example{
		Name:     "identity",
		ExprText: "(\\x: Int. x)",
		Patterns: []string{"lambda", "variable"},
	}

	assert.True(t, e.HasPattern("lambda"))
	assert.True(t, e.HasPattern("variable"))
	assert.False(t, e.HasPattern("application"))

	empty := Example{Name: "bare", ExprText: "x"}
	assert.False(t, empty.HasPattern("lambda"))
}
