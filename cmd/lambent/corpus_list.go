// Corpus list command shows all stored examples.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lambent/pkg/corpus"
)

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored examples",
	Long: `List fetches all corpus examples, newest first, and displays them.

Example:
  lambent corpus list
  lambent corpus list --json`,
	Args: cobra.NoArgs,
	RunE: runCorpusList,
}

func runCorpusList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	examples, err := corpus.NewManager(backend).List()
	if err != nil {
		return fmt.Errorf("list examples: %w", err)
	}

	if flagJSON {
		return printJSON(examples)
	}
	printExampleTable(examples)
	return nil
}
