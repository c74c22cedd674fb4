// Package backup implements the JSON import and export contracts for resume
// records.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// ImportSuffix marks titles of imported records.
const ImportSuffix = " (Imported)"

// exportSuffix is the fixed tail of export filenames.
const exportSuffix = "_backup.json"

// exportConcurrency bounds parallel file writes during a bulk export.
const exportConcurrency = 4

// ImportError reports a rejected import payload. The collection is untouched
// when this is returned.
type ImportError struct {
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("import error: %s", e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}

// Import validates content against the resume-record contract and inserts it
// as a new record: a fresh id, the title marked as imported, both timestamps
// reset to now. An existing id in the payload is never reused, so imports
// cannot overwrite.
func Import(s *store.Store, content []byte) (types.ResumeRecord, error) {
	if err := schemas.ValidateResumeRecord(string(content)); err != nil {
		return types.ResumeRecord{}, &ImportError{
			Message: "payload does not match the resume record shape (id, title and data are required)",
			Cause:   err,
		}
	}

	var rec types.ResumeRecord
	if err := json.Unmarshal(content, &rec); err != nil {
		return types.ResumeRecord{}, &ImportError{Message: "payload could not be decoded", Cause: err}
	}

	now := time.Now()
	rec.ID = store.NewID()
	rec.Title += ImportSuffix
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if !types.ValidTemplate(rec.Template) {
		rec.Template = types.DefaultTemplate
	}

	if err := s.Insert(rec); err != nil {
		return types.ResumeRecord{}, fmt.Errorf("failed to store imported resume: %w", err)
	}
	return rec, nil
}

// Export produces the pretty-printed JSON serialization of one record and the
// filename it should be downloaded as.
func Export(rec types.ResumeRecord) ([]byte, string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize resume %q: %w", rec.ID, err)
	}
	return data, Filename(rec.Title), nil
}

// ExportToDir writes one record's backup file into dir and returns the path.
func ExportToDir(rec types.ResumeRecord, dir string) (string, error) {
	data, name, err := Export(rec)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", path, err)
	}
	return path, nil
}

// ExportAsync writes a backup in the background and reports completion
// through done. The caller may keep working while the export is pending;
// concurrent exports of the same record are not synchronized (last to finish
// wins).
func ExportAsync(rec types.ResumeRecord, dir string, done func(path string, err error)) {
	go func() {
		path, err := ExportToDir(rec, dir)
		if done != nil {
			done(path, err)
		}
	}()
}

// ExportAll writes a backup file for every record into dir, fanning out the
// writes. Filename collisions between same-titled records are resolved by
// appending the record id.
func ExportAll(ctx context.Context, records []types.ResumeRecord, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory %s: %w", dir, err)
	}

	names := make(map[string]string, len(records)) // filename -> record id
	paths := make([]string, len(records))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)
	for i, rec := range records {
		name := Filename(rec.Title)
		if _, taken := names[name]; taken {
			name = SanitizeTitle(rec.Title) + "_" + rec.ID + exportSuffix
		}
		names[name] = rec.ID

		path := filepath.Join(dir, name)
		paths[i] = path
		data, _, err := Export(rec)
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write backup %s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Filename derives the download name for a record title: non-alphanumeric
// characters become underscores, then the fixed backup suffix is appended.
func Filename(title string) string {
	return SanitizeTitle(title) + exportSuffix
}

// SanitizeTitle maps a record title to a filesystem-safe stem.
func SanitizeTitle(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	return string(out)
}
