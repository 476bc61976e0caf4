package lambda

import "fmt"

// Expr is an expression of the calculus. The set of implementations is
// closed: Var, Lambda, Apply, and Effectful.
//
// Expressions carry no intrinsic type and receive no validation at
// construction; ill-scoped or malformed trees are only detected by Infer.
type Expr interface {
	// String renders the expression in the deterministic textual form used
	// in error messages and in the linearity check.
	String() string

	isExpr()
}

// Var is a variable reference, resolved only through a Context.
type Var struct {
	Name string
}

func (Var) isExpr() {}

func (e Var) String() string { return e.Name }

// Lambda is an abstraction binding Param at ParamType over Body.
type Lambda struct {
	Param     string
	ParamType Type
	Body      Expr
}

func (Lambda) isExpr() {}

func (e Lambda) String() string {
	return fmt.Sprintf("(\\%s: %s. %s)", e.Param, e.ParamType, e.Body)
}

// Apply is a function application (Fn Arg).
type Apply struct {
	Fn  Expr
	Arg Expr
}

func (Apply) isExpr() {}

func (e Apply) String() string {
	return fmt.Sprintf("(%s %s)", e.Fn, e.Arg)
}

// Effectful marks Inner as executing under the named effect.
type Effectful struct {
	Effect string
	Inner  Expr
}

func (Effectful) isExpr() {}

func (e Effectful) String() string {
	return fmt.Sprintf("[%s] %s", e.Effect, e.Inner)
}
