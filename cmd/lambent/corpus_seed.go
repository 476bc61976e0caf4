// Corpus seed command stores the built-in programs as corpus examples.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lambent/pkg/corpus"
	"github.com/mesh-intelligence/lambent/pkg/programs"
	"github.com/mesh-intelligence/lambent/pkg/types"
)

var corpusSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the corpus with the built-in programs",
	Long: `Seed runs every built-in demonstration program through inference and
stores the result as a corpus example. Programs already present in the
corpus are skipped, so seeding is idempotent.

Example:
  lambent corpus seed
  lambent corpus seed --json`,
	Args: cobra.NoArgs,
	RunE: runCorpusSeed,
}

func runCorpusSeed(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	m := corpus.NewManager(backend)
	registry := programs.BuiltIn()

	seeded, skipped := 0, 0
	for _, name := range registry.Names() {
		p, err := registry.Get(name)
		if err != nil {
			return err
		}
		expr, ctx := p.Build()

		if _, err := m.Add(p.Name, p.Category, types.SourceBuiltin, expr, ctx); err != nil {
			if errors.Is(err, types.ErrDuplicateName) {
				skipped++
				continue
			}
			return fmt.Errorf("seed %q: %w", p.Name, err)
		}
		seeded++
	}

	if flagJSON {
		return printJSON(map[string]int{"seeded": seeded, "skipped": skipped})
	}
	fmt.Printf("Seeded %d example(s), skipped %d already present\n", seeded, skipped)
	return nil
}
