package lambda

import (
	"errors"
	"fmt"
)

// ErrUnknownExpr is returned when an expression matches none of the known
// shapes (for example, a nil Expr or a pointer to a shape value).
var ErrUnknownExpr = errors.New("unknown expression form")

// UnboundVariableError reports a Var whose name is absent from the context.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

// LinearityError reports a Lambda that bound Param at a LinearType and
// failed the syntactic occurrence check.
type LinearityError struct {
	Param string
}

func (e *LinearityError) Error() string {
	return fmt.Sprintf("linear variable %s must be used exactly once", e.Param)
}

// TypeMismatchError reports an application whose function position did not
// infer to a FunctionType, or whose declared input type did not match the
// argument's inferred type.
type TypeMismatchError struct {
	FuncType Type
	ArgType  Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: %s cannot be applied to %s", e.FuncType, e.ArgType)
}
