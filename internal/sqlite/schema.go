// Package sqlite implements the SQLite backend for the Lambent corpus
// store. SQLite is the source of truth; JSONL files are an explicit
// export/import surface.
package sqlite

// Schema DDL for the corpus tables.
const (
	createExamples = `CREATE TABLE IF NOT EXISTS examples (
    example_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    category TEXT NOT NULL,
    source TEXT NOT NULL,
    expr_text TEXT NOT NULL,
    type_text TEXT NOT NULL DEFAULT '',
    infer_error TEXT NOT NULL DEFAULT '',
    complexity INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createExamplePatterns = `CREATE TABLE IF NOT EXISTS example_patterns (
    example_id TEXT NOT NULL,
    pattern TEXT NOT NULL,
    PRIMARY KEY (example_id, pattern),
    FOREIGN KEY (example_id) REFERENCES examples(example_id) ON DELETE CASCADE
);`
)

// Index DDL for common queries.
const (
	idxExamplesCategory   = `CREATE INDEX IF NOT EXISTS idx_examples_category ON examples(category);`
	idxExamplesComplexity = `CREATE INDEX IF NOT EXISTS idx_examples_complexity ON examples(complexity);`
	idxPatternsPattern    = `CREATE INDEX IF NOT EXISTS idx_example_patterns_pattern ON example_patterns(pattern);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createExamples,
	createExamplePatterns,
	idxExamplesCategory,
	idxExamplesComplexity,
	idxPatternsPattern,
}
