package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/lambent/pkg/types"
)

// exampleRecord is the JSONL wire form of an example. Timestamps are
// RFC3339 strings so exported files diff cleanly.
type exampleRecord struct {
	ExampleID  string   `json:"example_id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Source     string   `json:"source"`
	ExprText   string   `json:"expr_text"`
	TypeText   string   `json:"type_text,omitempty"`
	InferError string   `json:"infer_error,omitempty"`
	Patterns   []string `json:"patterns,omitempty"`
	Complexity int      `json:"complexity"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

func toRecord(e *types.Example) exampleRecord {
	return exampleRecord{
		ExampleID:  e.ExampleID,
		Name:       e.Name,
		Category:   e.Category,
		Source:     e.Source,
		ExprText:   e.ExprText,
		TypeText:   e.TypeText,
		InferError: e.InferError,
		Patterns:   e.Patterns,
		Complexity: e.Complexity,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
}

func fromRecord(r exampleRecord) (*types.Example, error) {
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &types.Example{
		ExampleID:  r.ExampleID,
		Name:       r.Name,
		Category:   r.Category,
		Source:     r.Source,
		ExprText:   r.ExprText,
		TypeText:   r.TypeText,
		InferError: r.InferError,
		Patterns:   r.Patterns,
		Complexity: r.Complexity,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line
// as a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the
// temp-file, fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ExportJSONL writes every example in the archive to path as one JSON
// object per line, newest first. The write is atomic.
func (b *Backend) ExportJSONL(path string) (int, error) {
	examples, err := b.ListExamples()
	if err != nil {
		return 0, err
	}

	records := make([]json.RawMessage, 0, len(examples))
	for _, e := range examples {
		data, err := json.Marshal(toRecord(e))
		if err != nil {
			return 0, fmt.Errorf("encoding example %s: %w", e.ExampleID, err)
		}
		records = append(records, data)
	}
	if err := writeJSONL(path, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// ImportJSONL loads examples from a JSONL file and saves each into the
// archive. Imported examples keep their IDs and timestamps, so a later
// import of the same file is idempotent. Malformed lines are skipped;
// the number of imported examples is returned.
func (b *Backend) ImportJSONL(path string) (int, error) {
	raw, err := readJSONL(path)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, line := range raw {
		var rec exampleRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		e, err := fromRecord(rec)
		if err != nil {
			continue
		}
		if _, err := b.SaveExample(e); err != nil {
			return imported, fmt.Errorf("importing example %q: %w", rec.Name, err)
		}
		imported++
	}
	return imported, nil
}
