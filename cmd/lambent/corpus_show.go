// Corpus show command displays a single stored example.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lambent/pkg/corpus"
	"github.com/mesh-intelligence/lambent/pkg/types"
)

var corpusShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored example by ID",
	Long: `Show displays the full details of a single corpus example.

Example:
  lambent corpus show 0198f001-89ab-7def-8123-456789abcdef
  lambent corpus show 0198f001-89ab-7def-8123-456789abcdef --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusShow,
}

func runCorpusShow(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	e, err := corpus.NewManager(backend).Get(args[0])
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("example %q not found", args[0])
		}
		return fmt.Errorf("get example: %w", err)
	}

	if flagJSON {
		return printJSON(e)
	}

	fmt.Println("ID:        ", e.ExampleID)
	fmt.Println("Name:      ", e.Name)
	fmt.Println("Category:  ", e.Category)
	fmt.Println("Source:    ", e.Source)
	fmt.Println("Expr:      ", e.ExprText)
	if e.WellTyped() {
		fmt.Println("Type:      ", e.TypeText)
	} else {
		fmt.Println("Error:     ", e.InferError)
	}
	fmt.Println("Patterns:  ", strings.Join(e.Patterns, ", "))
	fmt.Println("Complexity:", e.Complexity)
	fmt.Println("Created:   ", e.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
