package lambda

import "strings"

// Infer computes the type of expr under ctx.
//
// The algorithm is a single syntax-directed top-down pass: each recursive
// call fully determines its subtree's type before the parent proceeds.
// There is no unification and no fixed point; the grammar is monomorphic.
// Every failure is terminal for the call and propagates unchanged to the
// caller — no recovery, no fallback type.
func Infer(expr Expr, ctx Context) (Type, error) {
	switch e := expr.(type) {
	case Var:
		t, ok := ctx.Lookup(e.Name)
		if !ok {
			return nil, &UnboundVariableError{Name: e.Name}
		}
		return t, nil

	case Lambda:
		bodyType, err := Infer(e.Body, ctx.Extend(e.Param, e.ParamType))
		if err != nil {
			return nil, err
		}
		if _, isLinear := e.ParamType.(LinearType); isLinear {
			// Weak syntactic linearity check: the rendered parameter name
			// must occur as a substring of the rendered body. This
			// over-approximates "used exactly once" — unrelated substrings
			// pass, and multiple uses are never rejected. The inferred body
			// type is discarded when the check fails.
			if !strings.Contains(e.Body.String(), e.Param) {
				return nil, &LinearityError{Param: e.Param}
			}
		}
		return FunctionType{Input: e.ParamType, Output: bodyType}, nil

	case Apply:
		fnType, err := Infer(e.Fn, ctx)
		if err != nil {
			return nil, err
		}
		argType, err := Infer(e.Arg, ctx)
		if err != nil {
			return nil, err
		}
		fn, ok := fnType.(FunctionType)
		if !ok || !fn.Input.Equal(argType) {
			return nil, &TypeMismatchError{FuncType: fnType, ArgType: argType}
		}
		return fn.Output, nil

	case Effectful:
		baseType, err := Infer(e.Inner, ctx)
		if err != nil {
			return nil, err
		}
		// Effect labels are open: any name is accepted.
		return EffectfulType{Effect: e.Effect, Base: baseType}, nil

	default:
		return nil, ErrUnknownExpr
	}
}
