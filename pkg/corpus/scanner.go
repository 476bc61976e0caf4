// Package corpus analyzes lambda calculus programs and manages the
// example corpus: pattern extraction, complexity scoring, and persistence
// through a types.Archive backend.
package corpus

import (
	"sort"

	"github.com/mesh-intelligence/lambent/pkg/lambda"
)

// Structural patterns recognized by ExtractPatterns.
const (
	PatternVariable     = "variable"
	PatternLambda       = "lambda"
	PatternApplication  = "application"
	PatternEffect       = "effect"
	PatternLinearParam  = "linear-param"
	PatternHigherOrder  = "higher-order"
	PatternNestedLambda = "nested-lambda"
)

// ExtractPatterns walks the expression tree and returns the sorted set of
// structural patterns it exhibits. The result is deterministic for a given
// expression.
func ExtractPatterns(expr lambda.Expr) []string {
	found := map[string]bool{}
	scanPatterns(expr, found)

	patterns := make([]string, 0, len(found))
	for p := range found {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)
	return patterns
}

func scanPatterns(expr lambda.Expr, found map[string]bool) {
	switch e := expr.(type) {
	case lambda.Var:
		found[PatternVariable] = true
	case lambda.Lambda:
		found[PatternLambda] = true
		if _, ok := e.ParamType.(lambda.LinearType); ok {
			found[PatternLinearParam] = true
		}
		if _, ok := e.ParamType.(lambda.FunctionType); ok {
			found[PatternHigherOrder] = true
		}
		if containsLambda(e.Body) {
			found[PatternNestedLambda] = true
		}
		scanPatterns(e.Body, found)
	case lambda.Apply:
		found[PatternApplication] = true
		scanPatterns(e.Fn, found)
		scanPatterns(e.Arg, found)
	case lambda.Effectful:
		found[PatternEffect] = true
		scanPatterns(e.Inner, found)
	}
}

// containsLambda reports whether the tree holds a Lambda node anywhere.
func containsLambda(expr lambda.Expr) bool {
	switch e := expr.(type) {
	case lambda.Lambda:
		return true
	case lambda.Apply:
		return containsLambda(e.Fn) || containsLambda(e.Arg)
	case lambda.Effectful:
		return containsLambda(e.Inner)
	default:
		return false
	}
}

// Complexity returns the number of nodes in the expression tree. Unknown
// shapes count as a single node.
func Complexity(expr lambda.Expr) int {
	switch e := expr.(type) {
	case lambda.Lambda:
		return 1 + Complexity(e.Body)
	case lambda.Apply:
		return 1 + Complexity(e.Fn) + Complexity(e.Arg)
	case lambda.Effectful:
		return 1 + Complexity(e.Inner)
	default:
		return 1
	}
}
