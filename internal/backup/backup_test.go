package backup

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(storage.NewMemStore(0), 0)
}

func TestImport_AssignsFreshIdentity(t *testing.T) {
	st := newTestStore(t)

	payload := `{
		"id": "resume_123_abcdefghi",
		"title": "Backend Role",
		"data": {"fullName": "Jane Doe", "skills": ["Go"]}
	}`

	rec, err := Import(st, []byte(payload))
	require.NoError(t, err)

	assert.NotEqual(t, "resume_123_abcdefghi", rec.ID)
	assert.Equal(t, "Backend Role"+ImportSuffix, rec.Title)
	assert.Equal(t, "Jane Doe", rec.Data.FullName)
	assert.Equal(t, types.DefaultTemplate, rec.Template)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)

	stored, err := st.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Data, stored.Data)
}

func TestImport_NeverOverwritesExistingRecord(t *testing.T) {
	st := newTestStore(t)

	existing, err := st.Save(types.ResumeRecord{Title: "Original", Data: types.ResumeData{FullName: "Jane Doe"}})
	require.NoError(t, err)

	data, _, err := Export(existing.Record)
	require.NoError(t, err)

	imported, err := Import(st, data)
	require.NoError(t, err)

	assert.NotEqual(t, existing.Record.ID, imported.ID)
	assert.Len(t, st.List(), 2)

	kept, err := st.Get(existing.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", kept.Title)
}

func TestImport_RejectsMissingRequiredFields(t *testing.T) {
	st := newTestStore(t)

	// No "data" field.
	_, err := Import(st, []byte(`{"id": "resume_1_abc", "title": "No Payload"}`))
	require.Error(t, err)

	var importErr *ImportError
	require.True(t, errors.As(err, &importErr))
	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	assert.Empty(t, st.List(), "a rejected import must not touch the collection")
}

func TestImport_RejectsMalformedJSON(t *testing.T) {
	st := newTestStore(t)

	_, err := Import(st, []byte(`{"id": "resume_1_abc",`))
	require.Error(t, err)
	var importErr *ImportError
	assert.True(t, errors.As(err, &importErr))
	assert.Empty(t, st.List())
}

func TestExport_RoundTripsThroughImport(t *testing.T) {
	st := newTestStore(t)

	saved, err := st.Save(types.ResumeRecord{
		Title: "Backend Role",
		Data: types.ResumeData{
			FullName: "Jane Doe",
			Skills:   []string{"Go", "PostgreSQL"},
			Education: []types.EducationEntry{
				{Degree: "Bachelor of Science", School: "MIT", Year: "2020"},
			},
		},
	})
	require.NoError(t, err)

	data, name, err := Export(saved.Record)
	require.NoError(t, err)
	assert.Equal(t, "Backend_Role_backup.json", name)

	var roundTripped types.ResumeRecord
	require.NoError(t, json.Unmarshal(data, &roundTripped))
	assert.Equal(t, saved.Record.ID, roundTripped.ID)
	assert.Equal(t, saved.Record.Data, roundTripped.Data)
}

func TestExportToDir_WritesFile(t *testing.T) {
	dir := t.TempDir()
	rec := types.ResumeRecord{ID: "resume_1_abc", Title: "Jane Doe", Data: types.ResumeData{FullName: "Jane Doe"}}

	path, err := ExportToDir(rec, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Jane_Doe_backup.json"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(content))
}

func TestExportAll_ResolvesTitleCollisions(t *testing.T) {
	dir := t.TempDir()
	records := []types.ResumeRecord{
		{ID: "resume_1_aaa", Title: "Jane Doe"},
		{ID: "resume_2_bbb", Title: "Jane Doe"},
		{ID: "resume_3_ccc", Title: "Other"},
	}

	paths, err := ExportAll(context.Background(), records, dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	seen := make(map[string]bool)
	for _, p := range paths {
		assert.False(t, seen[p], "paths must be unique: %s", p)
		seen[p] = true
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
	assert.Contains(t, paths, filepath.Join(dir, "Jane_Doe_backup.json"))
	assert.Contains(t, paths, filepath.Join(dir, "Jane_Doe_resume_2_bbb_backup.json"))
}

func TestExportAsync_ReportsCompletion(t *testing.T) {
	dir := t.TempDir()
	rec := types.ResumeRecord{ID: "resume_1_abc", Title: "Jane Doe"}

	type outcome struct {
		path string
		err  error
	}
	done := make(chan outcome, 1)
	ExportAsync(rec, dir, func(path string, err error) {
		done <- outcome{path, err}
	})

	got := <-done
	require.NoError(t, got.err)
	_, err := os.Stat(got.path)
	assert.NoError(t, err)
}

func TestFilename_SanitizesTitle(t *testing.T) {
	assert.Equal(t, "Jane_Doe_backup.json", Filename("Jane Doe"))
	assert.Equal(t, "Backend___Frontend_backup.json", Filename("Backend & Frontend"))
	assert.Equal(t, "_backup.json", Filename(""))
	assert.Equal(t, "R_sum__2026_backup.json", Filename("Résumé 2026"))
}
