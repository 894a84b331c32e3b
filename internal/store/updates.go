package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ninetd/ninetd/internal/kv"
	"github.com/ninetd/ninetd/internal/models"
)

type updateBlob struct {
	Updates []models.UpdateEntry `json:"updates"`
}

// UpdateFeed is the persisted changelog shown on the updates page,
// newest entry first.
type UpdateFeed struct {
	mu      sync.Mutex
	updates []models.UpdateEntry
	kv      *kv.Store
	logger  zerolog.Logger
	now     func() time.Time
}

func NewUpdateFeed(kvs *kv.Store, logger zerolog.Logger) *UpdateFeed {
	return &UpdateFeed{
		kv:     kvs,
		logger: logger.With().Str("component", "store.updates").Logger(),
		now:    time.Now,
	}
}

func (f *UpdateFeed) Load() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var b updateBlob
	if f.kv.Get(kv.KeyUpdates, &b) {
		f.updates = b.Updates
	}
}

// Add prepends an entry, assigning a fresh id and the current time.
func (f *UpdateFeed) Add(entry models.UpdateEntry) models.UpdateEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry.ID = uuid.New().String()
	entry.Date = f.now()
	f.updates = append([]models.UpdateEntry{entry}, f.updates...)
	f.kv.Put(kv.KeyUpdates, updateBlob{Updates: f.updates})
	return entry
}

func (f *UpdateFeed) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = nil
	f.kv.Put(kv.KeyUpdates, updateBlob{Updates: f.updates})
}

func (f *UpdateFeed) Updates() []models.UpdateEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.UpdateEntry, len(f.updates))
	copy(out, f.updates)
	return out
}
