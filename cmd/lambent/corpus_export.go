// Corpus export command writes the corpus to a JSONL file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lambent/pkg/corpus"
)

var corpusExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the corpus to a JSONL file",
	Long: `Export writes every corpus example to a JSONL file, one JSON object
per line. The write is atomic: the file appears complete or not at all.

Example:
  lambent corpus export corpus.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusExport,
}

func runCorpusExport(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	n, err := corpus.NewManager(backend).Export(args[0])
	if err != nil {
		return fmt.Errorf("export corpus: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{"exported": n, "path": args[0]})
	}
	fmt.Printf("Exported %d example(s) to %s\n", n, args[0])
	return nil
}
