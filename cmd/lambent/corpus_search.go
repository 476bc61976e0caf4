// Corpus search command filters stored examples.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lambent/pkg/corpus"
	"github.com/mesh-intelligence/lambent/pkg/types"
)

var (
	searchPattern       string
	searchCategory      string
	searchMinComplexity int
	searchMaxComplexity int
	searchLimit         int
)

var corpusSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search stored examples",
	Long: `Search filters corpus examples by structural pattern, category, and
complexity. Filters combine with AND.

Example:
  lambent corpus search --pattern linear-param
  lambent corpus search --category basics --max-complexity 3
  lambent corpus search --pattern lambda --limit 5 --json`,
	Args: cobra.NoArgs,
	RunE: runCorpusSearch,
}

func init() {
	corpusSearchCmd.Flags().StringVar(&searchPattern, "pattern", "", "filter by structural pattern (variable, lambda, application, effect, linear-param, higher-order, nested-lambda)")
	corpusSearchCmd.Flags().StringVar(&searchCategory, "category", "", "filter by category")
	corpusSearchCmd.Flags().IntVar(&searchMinComplexity, "min-complexity", 0, "minimum node count (0 = unbounded)")
	corpusSearchCmd.Flags().IntVar(&searchMaxComplexity, "max-complexity", 0, "maximum node count (0 = unbounded)")
	corpusSearchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum number of results (0 = no limit)")
}

func runCorpusSearch(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	filter := types.Filter{
		Pattern:       searchPattern,
		Category:      searchCategory,
		MinComplexity: searchMinComplexity,
		MaxComplexity: searchMaxComplexity,
		Limit:         searchLimit,
	}

	examples, err := corpus.NewManager(backend).Search(filter)
	if err != nil {
		return fmt.Errorf("search examples: %w", err)
	}

	if flagJSON {
		return printJSON(examples)
	}
	printExampleTable(examples)
	return nil
}
