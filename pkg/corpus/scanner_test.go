package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/lambent/pkg/lambda"
)

func TestExtractPatterns(t *testing.T) {
	identity := lambda.Lambda{Param: "x", ParamType: lambda.Int, Body: lambda.Var{Name: "x"}}

	tests := []struct {
		name string
		expr lambda.Expr
		want []string
	}{
		{
			name: "bare variable",
			expr: lambda.Var{Name: "x"},
			want: []string{PatternVariable},
		},
		{
			name: "identity lambda",
			expr: identity,
			want: []string{PatternLambda, PatternVariable},
		},
		{
			name: "linear parameter",
			expr: lambda.Lambda{Param: "x", ParamType: lambda.LinearType{Base: lambda.Int}, Body: lambda.Var{Name: "x"}},
			want: []string{PatternLambda, PatternLinearParam, PatternVariable},
		},
		{
			name: "application of identity",
			expr: lambda.Apply{Fn: identity, Arg: lambda.Var{Name: "x"}},
			want: []string{PatternApplication, PatternLambda, PatternVariable},
		},
		{
			name: "effectful expression",
			expr: lambda.Effectful{Effect: "IO", Inner: lambda.Var{Name: "x"}},
			want: []string{PatternEffect, PatternVariable},
		},
		{
			name: "higher-order nested lambda",
			expr: lambda.Lambda{
				Param:     "f",
				ParamType: lambda.FunctionType{Input: lambda.Int, Output: lambda.Int},
				Body: lambda.Lambda{
					Param:     "x",
					ParamType: lambda.Int,
					Body:      lambda.Apply{Fn: lambda.Var{Name: "f"}, Arg: lambda.Var{Name: "x"}},
				},
			},
			want: []string{
				PatternApplication, PatternHigherOrder, PatternLambda,
				PatternNestedLambda, PatternVariable,
			},
		},
		{
			name: "nested lambda under application",
			expr: lambda.Lambda{
				Param:     "x",
				ParamType: lambda.Int,
				Body:      lambda.Apply{Fn: identity, Arg: lambda.Var{Name: "x"}},
			},
			want: []string{PatternApplication, PatternLambda, PatternNestedLambda, PatternVariable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPatterns(tt.expr)
			assert.Equal(t, tt.want, got, "patterns are sorted and deduplicated")
		})
	}
}

func TestExtractPatternsDeterministic(t *testing.T) {
	expr := lambda.Lambda{
		Param:     "f",
		ParamType: lambda.FunctionType{Input: lambda.Int, Output: lambda.Int},
		Body: lambda.Effectful{
			Effect: "IO",
			Inner:  lambda.Apply{Fn: lambda.Var{Name: "f"}, Arg: lambda.Var{Name: "x"}},
		},
	}

	first := ExtractPatterns(expr)
	second := ExtractPatterns(expr)
	assert.Equal(t, first, second)
}

func TestComplexity(t *testing.T) {
	identity := lambda.Lambda{Param: "x", ParamType: lambda.Int, Body: lambda.Var{Name: "x"}}

	tests := []struct {
		name string
		expr lambda.Expr
		want int
	}{
		{name: "variable", expr: lambda.Var{Name: "x"}, want: 1},
		{name: "identity", expr: identity, want: 2},
		{
			name: "application",
			expr: lambda.Apply{Fn: identity, Arg: lambda.Var{Name: "x"}},
			want: 4,
		},
		{
			name: "effect wrapper",
			expr: lambda.Effectful{Effect: "IO", Inner: identity},
			want: 3,
		},
		{
			name: "nested lambda with application body",
			expr: lambda.Lambda{
				Param:     "f",
				ParamType: lambda.FunctionType{Input: lambda.Int, Output: lambda.Int},
				Body: lambda.Lambda{
					Param:     "x",
					ParamType: lambda.Int,
					Body:      lambda.Apply{Fn: lambda.Var{Name: "f"}, Arg: lambda.Var{Name: "x"}},
				},
			},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Complexity(tt.expr))
		})
	}
}
