// Package session holds the editing context: the active record, the
// unsaved-changes flag and the debounce timers. The suggestion engine and
// resume store stay stateless; the session is the glue that calls them.
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/scheduler"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
)

// Session tracks one holder's editing state over a store and engine.
type Session struct {
	store  *store.Store
	engine *suggest.Engine

	autosave      *scheduler.Debouncer
	suggestTimer  *scheduler.Debouncer
	autosaveDelay time.Duration
	suggestDelay  time.Duration

	mu       sync.Mutex
	activeID string
	data     types.ResumeData
	template string
	unsaved  bool
	degraded bool
}

// New creates a session. The namespace is probed once: if the backend is
// unusable every save degrades to a no-op failure, surfaced here as a
// one-time notice.
func New(kv storage.KV, st *store.Store, eng *suggest.Engine) *Session {
	s := &Session{
		store:         st,
		engine:        eng,
		autosave:      scheduler.NewDebouncer(),
		suggestTimer:  scheduler.NewDebouncer(),
		autosaveDelay: scheduler.AutosaveDelay,
		suggestDelay:  scheduler.SuggestDelay,
		template:      types.DefaultTemplate,
	}
	if err := storage.Probe(kv); err != nil {
		log.Warn().Err(err).Msg("storage unavailable; resumes will not be saved this session")
		s.degraded = true
	}
	return s
}

// Restore loads the most recently updated record into the session, so a new
// session resumes where the last one left off. Returns false when the
// collection is empty.
func (s *Session) Restore() bool {
	rec, ok := s.store.MostRecentlyUpdated()
	if !ok {
		return false
	}
	s.load(rec)
	return true
}

// Load replaces the in-memory state with the stored record.
func (s *Session) Load(id string) error {
	rec, err := s.store.Get(id)
	if err != nil {
		return err
	}
	s.load(rec)
	return nil
}

func (s *Session) load(rec types.ResumeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = rec.ID
	s.data = rec.Data.Clone()
	s.template = rec.Template
	s.unsaved = false
}

// Reset clears the session to an empty new resume (no id until first save).
func (s *Session) Reset() {
	s.autosave.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = ""
	s.data = types.ResumeData{}
	s.template = types.DefaultTemplate
	s.unsaved = false
}

// Update replaces the working payload and template and schedules an autosave:
// only the last update in a burst reaches the store.
func (s *Session) Update(data types.ResumeData, template string) {
	s.mu.Lock()
	s.data = data.Clone()
	if template != "" {
		s.template = template
	}
	s.unsaved = true
	s.mu.Unlock()

	s.autosave.Schedule(s.autosaveDelay, func() {
		if _, err := s.Save(); err != nil {
			log.Warn().Err(err).Msg("autosave failed")
		}
	})
}

// Save writes the working state through the store immediately and adopts the
// finalized id. In degraded mode it fails without touching anything.
func (s *Session) Save() (store.SaveResult, error) {
	s.mu.Lock()
	if s.degraded {
		s.mu.Unlock()
		return store.SaveResult{}, &storage.UnavailableError{Message: "saves are disabled for this session"}
	}
	rec := types.ResumeRecord{
		ID:       s.activeID,
		Data:     s.data.Clone(),
		Template: s.template,
	}
	s.mu.Unlock()

	result, err := s.store.Save(rec)
	if err != nil {
		return store.SaveResult{}, err
	}

	s.mu.Lock()
	s.activeID = result.Record.ID
	s.unsaved = false
	s.mu.Unlock()
	return result, nil
}

// Flush runs a pending autosave now, if any.
func (s *Session) Flush() {
	s.autosave.Flush()
}

// Delete removes a record; deleting the active record resets the in-memory
// state to empty.
func (s *Session) Delete(id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.mu.Lock()
	active := s.activeID == id
	s.mu.Unlock()
	if active {
		s.Reset()
	}
	return nil
}

// Suggest queries the engine behind the suggestion debounce; deliver receives
// the results for the last keystroke in a burst.
func (s *Session) Suggest(input string, cat catalog.Category, deliver func([]suggest.Suggestion)) {
	s.suggestTimer.Schedule(s.suggestDelay, func() {
		deliver(s.engine.Query(input, cat))
	})
}

// Accept records a committed suggestion value for the category.
func (s *Session) Accept(cat catalog.Category, value string) error {
	return s.engine.RecordAcceptance(cat, value)
}

// ActiveID returns the id of the record being edited; empty for a new resume.
func (s *Session) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Unsaved reports whether edits exist that have not reached the store.
func (s *Session) Unsaved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unsaved
}

// Degraded reports whether the storage probe failed at session start.
func (s *Session) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Data returns a copy of the working payload.
func (s *Session) Data() types.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Template returns the working template id.
func (s *Session) Template() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// Close cancels pending debounced work.
func (s *Session) Close() {
	s.autosave.Stop()
	s.suggestTimer.Stop()
}
