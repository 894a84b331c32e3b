// Package store implements the client-side state layer: the task store,
// the append-only activity log, the toast relay and the preference
// stores. Stores are explicit instances wired together at startup; every
// mutation is persisted write-through to the durable medium.
package store

import (
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ninetd/ninetd/internal/kv"
	"github.com/ninetd/ninetd/internal/models"
)

// MaxLogEntries is the truncation window of the activity log. Pinned
// entries are not exempt; the window keeps the most recent entries only.
const MaxLogEntries = 300

// LogInput describes one event to record. Color and Metadata are
// optional; an empty Color picks the default accent for the type.
type LogInput struct {
	Type     models.LogType
	Title    string
	Message  string
	Color    string
	Metadata map[string]string
}

// Insights aggregates per-type counts over the stored log.
type Insights struct {
	Total     int `json:"total"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Deleted   int `json:"deleted"`
	Completed int `json:"completed"`
	Reopened  int `json:"reopened"`
}

type logBlob struct {
	Logs []models.LogEntry `json:"logs"`
}

// LogStore is the append-only, capacity-bounded record of domain
// events, ordered most-recent-first.
type LogStore struct {
	mu     sync.Mutex
	logs   []models.LogEntry
	kv     *kv.Store
	logger zerolog.Logger
	now    func() time.Time
}

// NewLogStore creates a log store backed by the given durable medium.
func NewLogStore(kvs *kv.Store, logger zerolog.Logger) *LogStore {
	return &LogStore{
		kv:     kvs,
		logger: logger.With().Str("component", "store.logs").Logger(),
		now:    time.Now,
	}
}

// Load hydrates the log from its durable slot. Absence or corruption
// leaves the store empty.
func (s *LogStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b logBlob
	if s.kv.Get(kv.KeyLogs, &b) {
		s.logs = b.Logs
	}
}

// Add records a new entry at the front of the log and truncates the
// collection to the most recent MaxLogEntries.
func (s *LogStore) Add(in LogInput) models.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	color := in.Color
	if color == "" {
		color = models.DefaultLogColor(in.Type)
	}
	entry := models.LogEntry{
		ID:        uuid.New().String(),
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		Color:     color,
		CreatedAt: s.now(),
		Pinned:    false,
		Metadata:  in.Metadata,
	}

	s.logs = append([]models.LogEntry{entry}, s.logs...)
	if len(s.logs) > MaxLogEntries {
		s.logs = s.logs[:MaxLogEntries]
	}
	s.persist()
	return entry
}

// Remove deletes one entry by id. Unknown ids are a no-op.
func (s *LogStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.logs {
		if e.ID == id {
			s.logs = append(s.logs[:i], s.logs[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// Clear empties the whole log. Clearing is itself not logged.
func (s *LogStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = nil
	s.persist()
}

// TogglePin flips the pin flag of one entry. Unknown ids are a no-op.
func (s *LogStore) TogglePin(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.logs {
		if s.logs[i].ID == id {
			s.logs[i].Pinned = !s.logs[i].Pinned
			s.persist()
			return true
		}
	}
	return false
}

// Logs returns a snapshot of the stored entries, most recent first.
func (s *LogStore) Logs() []models.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LogEntry, len(s.logs))
	copy(out, s.logs)
	return out
}

// Len returns the current number of stored entries.
func (s *LogStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logs)
}

// Filter returns a lazy, restartable view over a snapshot of the log.
// With no types it yields every entry; otherwise only entries whose
// type matches one of the arguments. Stored order is preserved.
func (s *LogStore) Filter(types ...models.LogType) iter.Seq[models.LogEntry] {
	snapshot := s.Logs()
	return func(yield func(models.LogEntry) bool) {
		for _, e := range snapshot {
			if len(types) > 0 && !containsType(types, e.Type) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Insights scans the full log and returns aggregate counts. The counts
// are recomputed on every call, never cached.
func (s *LogStore) Insights() Insights {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := Insights{Total: len(s.logs)}
	for _, e := range s.logs {
		switch e.Type {
		case models.LogCreated:
			in.Created++
		case models.LogUpdated:
			in.Updated++
		case models.LogDeleted:
			in.Deleted++
		case models.LogCompleted:
			in.Completed++
		case models.LogReopened:
			in.Reopened++
		}
	}
	return in
}

func (s *LogStore) persist() {
	s.kv.Put(kv.KeyLogs, logBlob{Logs: s.logs})
}

func containsType(types []models.LogType, t models.LogType) bool {
	for _, want := range types {
		if want == t {
			return true
		}
	}
	return false
}
