// Corpus import command loads examples from a JSONL file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lambent/pkg/corpus"
)

var corpusImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import examples from a JSONL file",
	Long: `Import loads corpus examples from a JSONL file produced by export.
Imported examples keep their IDs, so importing the same file twice is
idempotent. Malformed lines are skipped.

Example:
  lambent corpus import corpus.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusImport,
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	n, err := corpus.NewManager(backend).Import(args[0])
	if err != nil {
		return fmt.Errorf("import corpus: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{"imported": n, "path": args[0]})
	}
	fmt.Printf("Imported %d example(s) from %s\n", n, args[0])
	return nil
}
