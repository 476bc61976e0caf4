// Corpus parent command groups the example corpus subcommands.
package main

import (
	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the stored example corpus",
	Long: `Corpus manages the persistent store of analyzed lambda calculus
examples: seed it from the built-in programs, list and search stored
examples, and move the corpus between machines as JSONL.`,
}

func init() {
	corpusCmd.AddCommand(corpusSeedCmd)
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusSearchCmd)
	corpusCmd.AddCommand(corpusShowCmd)
	corpusCmd.AddCommand(corpusDeleteCmd)
	corpusCmd.AddCommand(corpusExportCmd)
	corpusCmd.AddCommand(corpusImportCmd)
}
