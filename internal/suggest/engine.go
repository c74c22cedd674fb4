// Package suggest implements the incremental-search suggestion engine: ranked
// fuzzy matching over static catalogs extended by per-category recency and
// custom lists.
package suggest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/storage"
)

const (
	// recencyCap bounds each persisted recency list.
	recencyCap = 20
	// recencyShown is how many recency entries an empty query returns.
	recencyShown = 5
	// emptyQueryCatalog is how many catalog entries an empty query returns
	// when no recency entries exist.
	emptyQueryCatalog = 10
	// maxResults truncates ranked result lists.
	maxResults = 50
)

// Span marks the matched substring of a suggestion, as byte offsets into Text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Suggestion is one ranked completion candidate.
type Suggestion struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
	// Highlight is the first case-insensitive occurrence of the query in
	// Text, or nil for fuzzy and word-boundary-only hits.
	Highlight *Span `json:"highlight,omitempty"`
}

// Engine answers suggestion queries and records accepted values. It is
// stateless apart from the persisted per-category lists.
type Engine struct {
	kv storage.KV
}

// NewEngine creates an engine over the given namespace.
func NewEngine(kv storage.KV) *Engine {
	return &Engine{kv: kv}
}

// Query maps (input, category) to a ranked sequence of suggestions.
//
// An empty input returns the category's recency list (up to 5), falling back
// to the first 10 catalog entries. Otherwise candidates are drawn from
// recency, custom and catalog lists (deduplicated case-insensitively, first
// occurrence wins), scored, filtered, stably sorted by descending score and
// truncated to 50. Unknown categories return nil.
func (e *Engine) Query(input string, cat catalog.Category) []Suggestion {
	if !catalog.Valid(cat) {
		return nil
	}

	input = strings.TrimSpace(input)
	if input == "" {
		if recent := e.Recent(cat, recencyShown); len(recent) > 0 {
			return asSuggestions(recent)
		}
		entries := catalog.Entries(cat)
		if len(entries) > emptyQueryCatalog {
			entries = entries[:emptyQueryCatalog]
		}
		return asSuggestions(entries)
	}

	pool := e.candidatePool(cat)
	ranked := make([]Suggestion, 0, len(pool))
	for _, candidate := range pool {
		score := rank(candidate, input)
		if score <= 0 {
			continue
		}
		ranked = append(ranked, Suggestion{
			Text:      candidate,
			Score:     score,
			Highlight: highlight(candidate, input),
		})
	}

	// Stable sort keeps pool insertion order on ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}

// RecordAcceptance notes that the holder committed value for the category:
// the value moves to the front of the recency list, and values absent from
// the static catalog are added to the custom list. Unknown categories and
// blank values are no-ops.
func (e *Engine) RecordAcceptance(cat catalog.Category, value string) error {
	if !catalog.Valid(cat) {
		return nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	recent := e.loadList(recencyKey(cat))
	filtered := make([]string, 0, len(recent)+1)
	filtered = append(filtered, value)
	for _, item := range recent {
		if !strings.EqualFold(item, value) {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) > recencyCap {
		filtered = filtered[:recencyCap]
	}
	if err := e.saveList(recencyKey(cat), filtered); err != nil {
		return fmt.Errorf("failed to record recent suggestion: %w", err)
	}

	if !catalog.Contains(cat, value) {
		custom := e.loadList(customKey(cat))
		if !containsFold(custom, value) {
			custom = append(custom, value)
			if err := e.saveList(customKey(cat), custom); err != nil {
				return fmt.Errorf("failed to record custom suggestion: %w", err)
			}
		}
	}

	return nil
}

// Recent returns up to limit most-recently-accepted values for the category.
func (e *Engine) Recent(cat catalog.Category, limit int) []string {
	recent := e.loadList(recencyKey(cat))
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// Custom returns the holder-contributed values for the category.
func (e *Engine) Custom(cat catalog.Category) []string {
	return e.loadList(customKey(cat))
}

// candidatePool unions recency, custom and catalog lists in that order,
// deduplicating case-insensitively with first occurrence winning.
func (e *Engine) candidatePool(cat catalog.Category) []string {
	seen := make(map[string]struct{})
	var pool []string
	add := func(items []string) {
		for _, item := range items {
			key := strings.ToLower(item)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pool = append(pool, item)
		}
	}
	add(e.loadList(recencyKey(cat)))
	add(e.loadList(customKey(cat)))
	add(catalog.Entries(cat))
	return pool
}

// loadList reads a persisted string list. Missing or corrupt data degrades to
// an empty list; corruption is logged, not fatal.
func (e *Engine) loadList(key string) []string {
	raw, ok, err := e.kv.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to read suggestion list")
		return nil
	}
	if !ok {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("corrupt suggestion list, treating as empty")
		return nil
	}
	return items
}

func (e *Engine) saveList(key string, items []string) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal list %q: %w", key, err)
	}
	return e.kv.Set(key, string(raw))
}

// recencyKey and customKey name the persisted lists; the formats are a wire
// contract shared with previously saved data.
func recencyKey(cat catalog.Category) string {
	return fmt.Sprintf("recentSuggestions_%s", cat)
}

func customKey(cat catalog.Category) string {
	return fmt.Sprintf("customSuggestions_%s", cat)
}

// highlight finds the first case-insensitive occurrence of input in candidate.
func highlight(candidate, input string) *Span {
	idx := strings.Index(strings.ToLower(candidate), strings.ToLower(input))
	if idx < 0 {
		return nil
	}
	return &Span{Start: idx, End: idx + len(input)}
}

func asSuggestions(items []string) []Suggestion {
	out := make([]Suggestion, len(items))
	for i, item := range items {
		out[i] = Suggestion{Text: item}
	}
	return out
}

func containsFold(items []string, value string) bool {
	for _, item := range items {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
