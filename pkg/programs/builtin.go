package programs

import "github.com/mesh-intelligence/lambent/pkg/lambda"

// Built-in program categories.
const (
	CategoryBasics  = "basics"
	CategoryLinear  = "linear"
	CategoryEffects = "effects"
	CategoryErrors  = "errors"
)

// BuiltIn returns a registry seeded with the canonical demonstration
// programs: the classical examples for each type former, plus two that
// fail inference on purpose.
func BuiltIn() *Registry {
	r := NewRegistry()

	identity := func() lambda.Expr {
		return lambda.Lambda{Param: "x", ParamType: lambda.Int, Body: lambda.Var{Name: "x"}}
	}

	builtins := []Program{
		{
			Name:        "identity",
			Description: "The identity function on Int",
			Category:    CategoryBasics,
			Build: func() (lambda.Expr, lambda.Context) {
				return identity(), lambda.NewContext()
			},
		},
		{
			Name:        "bool-identity",
			Description: "The identity function on Bool",
			Category:    CategoryBasics,
			Build: func() (lambda.Expr, lambda.Context) {
				return lambda.Lambda{Param: "b", ParamType: lambda.Bool, Body: lambda.Var{Name: "b"}},
					lambda.NewContext()
			},
		},
		{
			Name:        "apply-identity",
			Description: "The identity function applied to a bound Int variable",
			Category:    CategoryBasics,
			Build: func() (lambda.Expr, lambda.Context) {
				return lambda.Apply{Fn: identity(), Arg: lambda.Var{Name: "x"}},
					lambda.NewContext().Extend("x", lambda.Int)
			},
		},
		{
			Name:        "higher-order",
			Description: "A function taking an Int -> Int function and applying it",
			Category:    CategoryBasics,
			Build: func() (lambda.Expr, lambda.Context) {
				return lambda.Lambda{
					Param:     "f",
					ParamType: lambda.FunctionType{Input: lambda.Int, Output: lambda.Int},
					Body: lambda.Lambda{
						Param:     "x",
						ParamType: lambda.Int,
						Body:      lambda.Apply{Fn: lambda.Var{Name: "f"}, Arg: lambda.Var{Name: "x"}},
					},
				}, lambda.NewContext()
			},
		},
		{
			Name:        "linear-identity",
			Description: "The identity function on a linear Int, consumed once",
			Category:    CategoryLinear,
			Build: func() (lambda.Expr, lambda.Context) {
				return lambda.Lambda{
					Param:     "x",
					ParamType: lambda.LinearType{Base: lambda.Int},
					Body:      lambda.Var{Name: "x"},
				}, lambda.NewContext()
			},
		},
		{
			Name:        "linear-violation",
			Description: "A linear binder whose variable is never used; fails the linearity check",
			Category:    CategoryErrors,
			Build: func() (lambda.Expr, lambda.Context) {
				return lambda.Lambda{
					Param:     "x",
					ParamType: lambda.LinearType{Base: lambda.Int},
					Body:      lambda.Var{Name: "y"},
				}, lambda.NewContext().Extend("y", lambda.Int)
			},
		},
		{
			Name:        "io-variable",
			Description: "A bound Int variable evaluated under the IO effect",
			Category:    CategoryEffects,
			Build: func() (lambda.Expr, lambda.Context) {
				return lambda.Effectful{Effect: "IO", Inner: lambda.Var{Name: "x"}},
					lambda.NewContext().Extend("x", lambda.Int)
			},
		},
		{
			Name:        "unbound-variable",
			Description: "A free variable with no binding; fails inference",
			Category:    CategoryErrors,
			Build: func() (lambda.Expr, lambda.Context) {
				return lambda.Var{Name: "y"}, lambda.NewContext()
			},
		},
	}

	for _, p := range builtins {
		// Names are distinct by construction.
		_ = r.Register(p)
	}
	return r
}

// PiSample returns the standalone dependent function type used by the demo
// output: Pi n: Int. Int. The type has no inference rule; it exists to be
// rendered.
func PiSample() lambda.Type {
	return lambda.DependentFunctionType{
		ParamName: "n",
		ParamType: lambda.Int,
		ReturnTypeOf: func(string) lambda.Type {
			return lambda.Int
		},
	}
}
