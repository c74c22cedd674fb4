package suggest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/storage"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(storage.NewMemStore(0))
}

func TestQuery_EmptyInputListsCatalogHead(t *testing.T) {
	engine := newTestEngine(t)

	results := engine.Query("", catalog.Degrees)
	require.Len(t, results, 10)

	entries := catalog.Entries(catalog.Degrees)
	for i, s := range results {
		assert.Equal(t, entries[i], s.Text)
		assert.Zero(t, s.Score)
		assert.Nil(t, s.Highlight)
	}
}

func TestQuery_EmptyInputPrefersRecency(t *testing.T) {
	engine := newTestEngine(t)

	accepted := []string{"Rust", "Go (Golang)", "Python", "TypeScript", "Kotlin", "Scala", "Elixir"}
	for _, v := range accepted {
		require.NoError(t, engine.RecordAcceptance(catalog.Skills, v))
	}

	results := engine.Query("", catalog.Skills)
	require.Len(t, results, 5)
	// Most recent first.
	assert.Equal(t, "Elixir", results[0].Text)
	assert.Equal(t, "Scala", results[1].Text)
}

func TestQuery_UnknownCategoryReturnsEmpty(t *testing.T) {
	engine := newTestEngine(t)

	assert.Empty(t, engine.Query("", catalog.Category("")))
	assert.Empty(t, engine.Query("python", catalog.Category("nonsense")))
}

func TestQuery_ScoresNonIncreasingAndPositive(t *testing.T) {
	engine := newTestEngine(t)

	for _, input := range []string{"uni", "data", "b", "engineer"} {
		for _, cat := range catalog.All() {
			results := engine.Query(input, cat)
			for i, s := range results {
				assert.Greater(t, s.Score, 0, "score 0 must never appear (cat=%s input=%q)", cat, input)
				if i > 0 {
					assert.GreaterOrEqual(t, results[i-1].Score, s.Score,
						"results must be sorted by non-increasing score (cat=%s input=%q)", cat, input)
				}
			}
		}
	}
}

func TestQuery_TruncatesToFifty(t *testing.T) {
	engine := newTestEngine(t)

	// Single-letter prefix over the biggest catalog produces plenty of hits.
	results := engine.Query("s", catalog.Skills)
	assert.LessOrEqual(t, len(results), 50)
}

func TestQuery_AcceptedValueRanksFirst(t *testing.T) {
	engine := newTestEngine(t)

	require.NoError(t, engine.RecordAcceptance(catalog.Companies, "Initech"))

	results := engine.Query("Initech", catalog.Companies)
	require.NotEmpty(t, results)
	assert.Equal(t, "Initech", results[0].Text)
	assert.Equal(t, 1000, results[0].Score)

	recent := engine.Recent(catalog.Companies, 0)
	require.NotEmpty(t, recent)
	assert.Equal(t, "Initech", recent[0])
}

func TestQuery_DeduplicatesCaseInsensitively(t *testing.T) {
	engine := newTestEngine(t)

	// "PYTHON" duplicates the catalog's "Python"; the recency casing wins
	// because the recency list is merged first.
	require.NoError(t, engine.RecordAcceptance(catalog.Skills, "PYTHON"))

	results := engine.Query("python", catalog.Skills)
	require.NotEmpty(t, results)
	count := 0
	for _, s := range results {
		if s.Score == 1000 {
			count++
			assert.Equal(t, "PYTHON", s.Text)
		}
	}
	assert.Equal(t, 1, count, "exact duplicates must collapse to one entry")
}

func TestQuery_HighlightSpans(t *testing.T) {
	engine := newTestEngine(t)

	results := engine.Query("uni", catalog.Universities)
	require.NotEmpty(t, results)
	for _, s := range results {
		if s.Highlight == nil {
			continue
		}
		span := s.Text[s.Highlight.Start:s.Highlight.End]
		assert.Equal(t, "uni", strings.ToLower(span))
	}
}

func TestQuery_FuzzyHitHasNoHighlight(t *testing.T) {
	engine := newTestEngine(t)

	require.NoError(t, engine.RecordAcceptance(catalog.Companies, "Initech"))

	// One substitution away; not a substring, so no span.
	results := engine.Query("Unitech", catalog.Companies)
	require.NotEmpty(t, results)
	found := false
	for _, s := range results {
		if s.Text == "Initech" {
			found = true
			assert.Equal(t, 50, s.Score)
			assert.Nil(t, s.Highlight)
		}
	}
	assert.True(t, found)
}

func TestRecordAcceptance_CapsRecencyAtTwenty(t *testing.T) {
	engine := newTestEngine(t)

	for i := 0; i < 30; i++ {
		require.NoError(t, engine.RecordAcceptance(catalog.Skills, fmt.Sprintf("Skill %02d", i)))
	}

	recent := engine.Recent(catalog.Skills, 0)
	assert.Len(t, recent, 20)
	assert.Equal(t, "Skill 29", recent[0])
}

func TestRecordAcceptance_MovesDuplicateToFront(t *testing.T) {
	engine := newTestEngine(t)

	require.NoError(t, engine.RecordAcceptance(catalog.Skills, "Go (Golang)"))
	require.NoError(t, engine.RecordAcceptance(catalog.Skills, "Python"))
	require.NoError(t, engine.RecordAcceptance(catalog.Skills, "go (golang)"))

	recent := engine.Recent(catalog.Skills, 0)
	require.Len(t, recent, 2)
	assert.Equal(t, "go (golang)", recent[0])
	assert.Equal(t, "Python", recent[1])
}

func TestRecordAcceptance_CustomOnlyForNonCatalogValues(t *testing.T) {
	engine := newTestEngine(t)

	// Catalog member: recency only.
	require.NoError(t, engine.RecordAcceptance(catalog.Skills, "Python"))
	assert.Empty(t, engine.Custom(catalog.Skills))

	// Novel value: remembered as custom, once.
	require.NoError(t, engine.RecordAcceptance(catalog.Skills, "Underwater Basket Weaving"))
	require.NoError(t, engine.RecordAcceptance(catalog.Skills, "underwater basket weaving"))
	custom := engine.Custom(catalog.Skills)
	require.Len(t, custom, 1)
	assert.Equal(t, "Underwater Basket Weaving", custom[0])
}

func TestRecordAcceptance_UnknownCategoryIsNoOp(t *testing.T) {
	engine := newTestEngine(t)

	require.NoError(t, engine.RecordAcceptance(catalog.Category("bogus"), "value"))
	assert.Empty(t, engine.Recent(catalog.Category("bogus"), 0))
}

func TestQuery_CorruptListDegradesToEmpty(t *testing.T) {
	kv := storage.NewMemStore(0)
	require.NoError(t, kv.Set("recentSuggestions_skills", "{not json"))
	engine := NewEngine(kv)

	// Corrupt recency data is ignored; catalog still answers.
	results := engine.Query("", catalog.Skills)
	assert.Len(t, results, 10)
}
