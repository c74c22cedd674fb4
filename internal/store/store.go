// Package store implements durable CRUD over the resume collection with
// storage-capacity awareness. The whole collection is serialized under one
// key; every mutation is a read-modify-write of the full collection.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// CollectionKey is the namespace key holding the serialized resume collection.
const CollectionKey = "resumes"

// CopySuffix is appended to a duplicated record's title.
const CopySuffix = " (Copy)"

// Store persists the resume collection. It is stateless aside from the
// persisted data; all context arrives as parameters.
type Store struct {
	kv       storage.KV
	maxBytes int
	now      func() time.Time
}

// New creates a store over the given namespace. maxBytes is the capacity
// budget used for the pre-flight advisory; zero or negative means
// storage.DefaultMaxBytes.
func New(kv storage.KV, maxBytes int) *Store {
	if maxBytes <= 0 {
		maxBytes = storage.DefaultMaxBytes
	}
	return &Store{kv: kv, maxBytes: maxBytes, now: time.Now}
}

// SaveResult reports the outcome of a successful save.
type SaveResult struct {
	Record types.ResumeRecord
	// QuotaWarning is set when the pre-flight estimate exceeded the
	// advisory threshold. The save still completed.
	QuotaWarning bool
	// Usage is the estimated namespace size in bytes at pre-flight time.
	Usage int
}

// Save upserts the record into the collection. A record without an id gets
// one assigned; createdAt is set only on first save and preserved afterwards;
// updatedAt is always set to now. The title is derived from the holder's name
// when the record carries none.
//
// The write either fully succeeds or leaves the prior collection intact. A
// quota advisory (usage past 90% of budget) is non-fatal and reported in the
// result; a backend rejection is returned as an error.
func (s *Store) Save(rec types.ResumeRecord) (SaveResult, error) {
	warning := s.preflight()

	now := s.now()
	rec = rec.Clone()

	if rec.Title == "" {
		rec.Title = rec.Data.DeriveTitle()
	}
	if !types.ValidTemplate(rec.Template) {
		rec.Template = types.DefaultTemplate
	}

	records := s.load()

	if rec.ID == "" {
		rec.ID = NewID()
		rec.CreatedAt = now
	} else if existing, idx := find(records, rec.ID); idx >= 0 {
		rec.CreatedAt = existing.CreatedAt
	} else if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	if _, idx := find(records, rec.ID); idx >= 0 {
		records[idx] = rec
	} else {
		records = append(records, rec)
	}

	if err := s.write(records); err != nil {
		return SaveResult{}, err
	}

	usage, _ := storage.Usage(s.kv)
	return SaveResult{Record: rec, QuotaWarning: warning, Usage: usage}, nil
}

// Insert adds a fully prepared record (id, title and timestamps already set)
// as a new entry. It never overwrites: an existing id is an error.
func (s *Store) Insert(rec types.ResumeRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("cannot insert record without id")
	}
	records := s.load()
	if _, idx := find(records, rec.ID); idx >= 0 {
		return fmt.Errorf("record %q already exists", rec.ID)
	}
	records = append(records, rec.Clone())
	return s.write(records)
}

// List returns all records in storage order. Empty or unreadable storage
// yields an empty slice, never an error; corruption is logged as a warning.
func (s *Store) List() []types.ResumeRecord {
	return s.load()
}

// Get returns the record with the given id, or NotFoundError.
func (s *Store) Get(id string) (types.ResumeRecord, error) {
	records := s.load()
	if rec, idx := find(records, id); idx >= 0 {
		return rec.Clone(), nil
	}
	return types.ResumeRecord{}, &NotFoundError{ID: id}
}

// Delete removes the record with the given id and rewrites the collection.
// Deleting an absent id is a no-op, not an error.
func (s *Store) Delete(id string) error {
	records := s.load()
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return s.write(kept)
}

// Duplicate deep-copies the record with the given id into a new entry with a
// fresh id, a copy-marked title and fresh timestamps. The original is
// untouched.
func (s *Store) Duplicate(id string) (types.ResumeRecord, error) {
	records := s.load()
	original, idx := find(records, id)
	if idx < 0 {
		return types.ResumeRecord{}, &NotFoundError{ID: id}
	}

	now := s.now()
	dup := original.Clone()
	dup.ID = NewID()
	dup.Title = original.Title + CopySuffix
	dup.CreatedAt = now
	dup.UpdatedAt = now

	records = append(records, dup)
	if err := s.write(records); err != nil {
		return types.ResumeRecord{}, err
	}
	return dup, nil
}

// MostRecentlyUpdated returns the record with the maximum updatedAt, used to
// restore the last-worked-on resume at startup. ok is false when the
// collection is empty.
func (s *Store) MostRecentlyUpdated() (types.ResumeRecord, bool) {
	records := s.load()
	if len(records) == 0 {
		return types.ResumeRecord{}, false
	}
	latest := records[0]
	for _, rec := range records[1:] {
		if rec.UpdatedAt.After(latest.UpdatedAt) {
			latest = rec
		}
	}
	return latest.Clone(), true
}

// NewID generates a collection-unique opaque id. The timestamp prefix keeps
// ids roughly sortable; the random suffix makes collisions negligible.
func NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("resume_%d_%s", time.Now().UnixMilli(), suffix)
}

// preflight estimates namespace usage before a write and reports whether the
// advisory threshold is crossed. Estimation failures are treated as "no
// warning"; the write itself remains the authority.
func (s *Store) preflight() bool {
	usage, err := storage.Usage(s.kv)
	if err != nil {
		log.Warn().Err(err).Msg("could not estimate storage usage")
		return false
	}
	if float64(usage) > float64(s.maxBytes)*storage.WarnThreshold {
		log.Warn().
			Int("usage", usage).
			Int("budget", s.maxBytes).
			Msg("storage usage past advisory threshold; consider deleting old resumes or exporting a backup")
		return true
	}
	return false
}

// load reads the collection. Missing data is an empty collection; corrupt
// data is logged and treated as empty.
func (s *Store) load() []types.ResumeRecord {
	raw, ok, err := s.kv.Get(CollectionKey)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read resume collection")
		return nil
	}
	if !ok {
		return nil
	}
	var records []types.ResumeRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warn().Err(err).Msg("corrupt resume collection, treating as empty")
		return nil
	}
	return records
}

// write serializes and atomically persists the whole collection.
func (s *Store) write(records []types.ResumeRecord) error {
	if records == nil {
		records = []types.ResumeRecord{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return &WriteError{Message: "failed to serialize resume collection", Cause: err}
	}
	if err := s.kv.Set(CollectionKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist resume collection: %w", err)
	}
	return nil
}

func find(records []types.ResumeRecord, id string) (types.ResumeRecord, int) {
	for i, rec := range records {
		if rec.ID == id {
			return rec, i
		}
	}
	return types.ResumeRecord{}, -1
}
