// Shared helpers for lambent CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/lambent/pkg/sqlite"
	"github.com/mesh-intelligence/lambent/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (types.Archive, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printExampleTable prints examples in a human-readable table format.
func printExampleTable(examples []*types.Example) {
	if len(examples) == 0 {
		fmt.Println("No examples found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTYPE\tPATTERNS")
	fmt.Fprintln(w, "--\t----\t--------\t----\t--------")
	for _, e := range examples {
		typeCol := e.TypeText
		if !e.WellTyped() {
			typeCol = "error: " + e.InferError
		}
		if len(typeCol) > 40 {
			typeCol = typeCol[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(e.ExampleID),
			e.Name,
			e.Category,
			typeCol,
			strings.Join(e.Patterns, ","),
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d example(s)\n", len(examples))
}

// shortID truncates a UUID to its first 8 characters for readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
