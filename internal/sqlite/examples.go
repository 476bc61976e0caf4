package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/lambent/pkg/types"
)

// exampleColumns is the column list shared by all example SELECTs.
const exampleColumns = "example_id, name, category, source, expr_text, type_text, infer_error, complexity, created_at, updated_at"

// SaveExample creates or updates an example. A missing ExampleID means
// create: a UUID v7 is generated and timestamps are set. On create a
// duplicate name is rejected with ErrDuplicateName.
func (b *Backend) SaveExample(e *types.Example) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrArchiveDetached
	}
	if err := e.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	isCreate := e.ExampleID == ""
	if isCreate {
		var existing int
		err := b.db.QueryRow("SELECT 1 FROM examples WHERE name = ?", e.Name).Scan(&existing)
		if err == nil {
			return "", types.ErrDuplicateName
		}
		if err != sql.ErrNoRows {
			return "", fmt.Errorf("checking example name: %w", err)
		}
		e.ExampleID = newUUID()
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}

	_, err := b.db.Exec(`
		INSERT INTO examples (`+exampleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(example_id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			source = excluded.source,
			expr_text = excluded.expr_text,
			type_text = excluded.type_text,
			infer_error = excluded.infer_error,
			complexity = excluded.complexity,
			updated_at = excluded.updated_at`,
		e.ExampleID, e.Name, e.Category, e.Source, e.ExprText, e.TypeText,
		e.InferError, e.Complexity,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("upserting example: %w", err)
	}

	if err := b.persistPatterns(e); err != nil {
		return "", err
	}
	return e.ExampleID, nil
}

// persistPatterns replaces the pattern rows for the example.
// The caller must hold b.mu.
func (b *Backend) persistPatterns(e *types.Example) error {
	if _, err := b.db.Exec(
		"DELETE FROM example_patterns WHERE example_id = ?", e.ExampleID); err != nil {
		return fmt.Errorf("clearing example patterns: %w", err)
	}
	for _, p := range e.Patterns {
		if _, err := b.db.Exec(
			"INSERT INTO example_patterns (example_id, pattern) VALUES (?, ?)",
			e.ExampleID, p); err != nil {
			return fmt.Errorf("inserting example pattern: %w", err)
		}
	}
	return nil
}

// GetExample returns the example with the given ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (b *Backend) GetExample(id string) (*types.Example, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrArchiveDetached
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := b.db.QueryRow(
		"SELECT "+exampleColumns+" FROM examples WHERE example_id = ?", id)
	e, err := scanExample(row)
	if err != nil {
		return nil, err
	}
	if err := b.loadPatterns(e); err != nil {
		return nil, err
	}
	return e, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExample(row rowScanner) (*types.Example, error) {
	var e types.Example
	var createdAt, updatedAt string
	err := row.Scan(&e.ExampleID, &e.Name, &e.Category, &e.Source,
		&e.ExprText, &e.TypeText, &e.InferError, &e.Complexity,
		&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning example: %w", err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing example created_at: %w", err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing example updated_at: %w", err)
	}
	return &e, nil
}

// loadPatterns fills e.Patterns, sorted for deterministic output.
// The caller must hold b.mu (read or write).
func (b *Backend) loadPatterns(e *types.Example) error {
	rows, err := b.db.Query(
		"SELECT pattern FROM example_patterns WHERE example_id = ? ORDER BY pattern", e.ExampleID)
	if err != nil {
		return fmt.Errorf("loading example patterns: %w", err)
	}
	defer rows.Close()

	e.Patterns = nil
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return fmt.Errorf("scanning example pattern: %w", err)
		}
		e.Patterns = append(e.Patterns, p)
	}
	return rows.Err()
}

// ListExamples returns all examples, newest first.
func (b *Backend) ListExamples() ([]*types.Example, error) {
	return b.SearchExamples(types.Filter{})
}

// SearchExamples returns the examples matching the filter, newest first.
// A zero Filter matches everything.
func (b *Backend) SearchExamples(filter types.Filter) ([]*types.Example, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrArchiveDetached
	}

	query := "SELECT " + exampleColumns + " FROM examples"
	var conditions []string
	var args []any

	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Pattern != "" {
		conditions = append(conditions,
			"example_id IN (SELECT example_id FROM example_patterns WHERE pattern = ?)")
		args = append(args, filter.Pattern)
	}
	if filter.MinComplexity > 0 {
		conditions = append(conditions, "complexity >= ?")
		args = append(args, filter.MinComplexity)
	}
	if filter.MaxComplexity > 0 {
		conditions = append(conditions, "complexity <= ?")
		args = append(args, filter.MaxComplexity)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, name"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching examples: %w", err)
	}
	defer rows.Close()

	var results []*types.Example
	for rows.Next() {
		e, err := scanExample(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, e := range results {
		if err := b.loadPatterns(e); err != nil {
			return nil, err
		}
	}
	if results == nil {
		results = []*types.Example{}
	}
	return results, nil
}

// DeleteExample removes the example and its pattern rows.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (b *Backend) DeleteExample(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrArchiveDetached
	}
	if id == "" {
		return types.ErrInvalidID
	}

	var exists int
	if err := b.db.QueryRow(
		"SELECT 1 FROM examples WHERE example_id = ?", id).Scan(&exists); err == sql.ErrNoRows {
		return types.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("checking example: %w", err)
	}

	if _, err := b.db.Exec(
		"DELETE FROM example_patterns WHERE example_id = ?", id); err != nil {
		return fmt.Errorf("deleting example patterns: %w", err)
	}
	if _, err := b.db.Exec(
		"DELETE FROM examples WHERE example_id = ?", id); err != nil {
		return fmt.Errorf("deleting example: %w", err)
	}
	return nil
}
