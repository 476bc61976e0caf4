// Package lambda defines a small typed lambda calculus and its type
// inference engine. The calculus extends the classical simply-typed core
// with dependent function types, linear types, and effect-tracking types.
//
// Types, expressions, and contexts are immutable values; Infer is a pure
// function over them, so independent inferences may run concurrently
// without coordination.
package lambda

import "fmt"

// Type is a type of the calculus. The set of implementations is closed:
// IntType, BoolType, FunctionType, DependentFunctionType, LinearType,
// and EffectfulType.
//
// Equal is structural, never identity-based. DependentFunctionType is the
// one exception: it has no structural equality and compares equal to
// nothing, itself included.
type Type interface {
	// Equal reports whether the type is structurally equal to other.
	Equal(other Type) bool

	// String renders the type in the deterministic textual form used in
	// error messages and tests.
	String() string

	isType()
}

// Singleton values for the base types.
var (
	Int  Type = IntType{}
	Bool Type = BoolType{}
)

// IntType is the integer base type.
type IntType struct{}

func (IntType) isType() {}

func (IntType) Equal(other Type) bool {
	_, ok := other.(IntType)
	return ok
}

func (IntType) String() string { return "Int" }

// BoolType is the boolean base type.
type BoolType struct{}

func (BoolType) isType() {}

func (BoolType) Equal(other Type) bool {
	_, ok := other.(BoolType)
	return ok
}

func (BoolType) String() string { return "Bool" }

// FunctionType is the function type Input -> Output.
type FunctionType struct {
	Input  Type
	Output Type
}

func (FunctionType) isType() {}

func (t FunctionType) Equal(other Type) bool {
	o, ok := other.(FunctionType)
	if !ok {
		return false
	}
	return t.Input.Equal(o.Input) && t.Output.Equal(o.Output)
}

func (t FunctionType) String() string {
	return fmt.Sprintf("(%s -> %s)", t.Input, t.Output)
}

// DependentFunctionType is a Pi type: a function type whose return type is
// computed from the bound parameter. ReturnTypeOf is called with the
// parameter's name as a placeholder, never with an evaluated argument.
//
// The variant has no inference rule and no structural equality; it is a
// standalone printable value. Equal always reports false so that an
// accidental appearance in an application-type match fails closed.
type DependentFunctionType struct {
	ParamName    string
	ParamType    Type
	ReturnTypeOf func(name string) Type
}

func (DependentFunctionType) isType() {}

func (DependentFunctionType) Equal(Type) bool { return false }

func (t DependentFunctionType) String() string {
	ret := "_"
	if t.ReturnTypeOf != nil {
		ret = t.ReturnTypeOf(t.ParamName).String()
	}
	return fmt.Sprintf("(Pi %s: %s. %s)", t.ParamName, t.ParamType, ret)
}

// LinearType wraps a type whose bound variable must be consumed exactly
// once. Enforcement is the weak syntactic check in Infer; see the Lambda
// rule there.
type LinearType struct {
	Base Type
}

func (LinearType) isType() {}

func (t LinearType) Equal(other Type) bool {
	o, ok := other.(LinearType)
	if !ok {
		return false
	}
	return t.Base.Equal(o.Base)
}

func (t LinearType) String() string {
	return fmt.Sprintf("Linear[%s]", t.Base)
}

// EffectfulType wraps a type with a named side-effect label.
type EffectfulType struct {
	Effect string
	Base   Type
}

func (EffectfulType) isType() {}

func (t EffectfulType) Equal(other Type) bool {
	o, ok := other.(EffectfulType)
	if !ok {
		return false
	}
	return t.Effect == o.Effect && t.Base.Equal(o.Base)
}

func (t EffectfulType) String() string {
	return fmt.Sprintf("Effect[%s, %s]", t.Effect, t.Base)
}
