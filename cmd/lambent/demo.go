// Demo command runs the built-in demonstration programs through the
// inference engine and prints the results.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lambent/pkg/lambda"
	"github.com/mesh-intelligence/lambent/pkg/programs"
)

// demoResult is the JSON form of a single demo outcome. A program that
// fails inference reports its typing error here; that is a result, not a
// command failure.
type demoResult struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Expr       string `json:"expr"`
	Type       string `json:"type,omitempty"`
	InferError string `json:"infer_error,omitempty"`
}

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Run the built-in demonstration programs",
	Long: `Demo builds each built-in demonstration program, infers its type, and
prints the expression with its inferred type or typing error. With a
program name, runs only that program.

Example:
  lambent demo
  lambent demo identity
  lambent demo --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	registry := programs.BuiltIn()

	names := registry.Names()
	single := len(args) == 1
	if single {
		if _, err := registry.Get(args[0]); err != nil {
			return err
		}
		names = []string{args[0]}
	}

	results := make([]demoResult, 0, len(names))
	for _, name := range names {
		p, err := registry.Get(name)
		if err != nil {
			return err
		}
		expr, ctx := p.Build()

		r := demoResult{Name: p.Name, Category: p.Category, Expr: expr.String()}
		if inferred, err := lambda.Infer(expr, ctx); err != nil {
			r.InferError = err.Error()
		} else {
			r.Type = inferred.String()
		}
		results = append(results, r)
	}

	if flagJSON {
		return printJSON(results)
	}

	for _, r := range results {
		fmt.Printf("%s (%s)\n", r.Name, r.Category)
		fmt.Printf("  expr: %s\n", r.Expr)
		if r.InferError != "" {
			fmt.Printf("  typing error: %s\n", r.InferError)
		} else {
			fmt.Printf("  type: %s\n", r.Type)
		}
	}
	if !single {
		fmt.Printf("\ndependent type sample: %s\n", programs.PiSample().String())
	}
	return nil
}
