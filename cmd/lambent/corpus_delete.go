// Corpus delete command removes a stored example by ID.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lambent/pkg/corpus"
	"github.com/mesh-intelligence/lambent/pkg/types"
)

var corpusDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored example by ID",
	Long: `Delete removes a corpus example by its ID.

Example:
  lambent corpus delete 0198f001-89ab-7def-8123-456789abcdef
  lambent corpus delete 0198f001-89ab-7def-8123-456789abcdef --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusDelete,
}

func runCorpusDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := corpus.NewManager(backend).Delete(id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("example %q not found", id)
		}
		return fmt.Errorf("delete example: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"deleted": id, "status": "success"})
	}
	fmt.Printf("Deleted example: %s\n", id)
	return nil
}
