// Package kv is the durable key-value medium backing the client stores.
// Each store serializes its full state into one namespaced slot; reads
// fall back to empty state on absence or corruption and writes are
// fire-and-forget, so a broken medium never surfaces to callers.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Slot keys. The 9td_ prefix namespaces the blobs the same way the
// desktop build namespaced its local storage.
const (
	KeyTasks    = "9td_tasks"
	KeyLogs     = "9td_logs"
	KeyFeatures = "9td_features"
	KeyTheme    = "9td_theme"
	KeyLayout   = "9td_layout"
	KeyUpdates  = "9td_updates"
)

type blob struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (blob) TableName() string { return "blobs" }

// Store wraps a single-file SQLite database holding one row per slot.
type Store struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// Open opens (or creates) the durable medium at path. Use ":memory:"
// for an ephemeral store in tests.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open durable store: %w", err)
	}
	if err := db.AutoMigrate(&blob{}); err != nil {
		return nil, fmt.Errorf("failed to migrate durable store: %w", err)
	}
	return &Store{
		db:     db,
		logger: logger.With().Str("component", "kv").Logger(),
	}, nil
}

// Get deserializes the slot into v. It returns false when the slot is
// absent or unreadable; corruption is logged and treated as absence.
func (s *Store) Get(key string, v any) bool {
	var row blob
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to read slot")
		}
		return false
	}
	if err := json.Unmarshal([]byte(row.Value), v); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding corrupt slot")
		return false
	}
	return true
}

// Put serializes v into the slot. Failures are logged and swallowed;
// the in-memory state stays authoritative for the session.
func (s *Store) Put(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to serialize slot")
		return
	}
	row := blob{Key: key, Value: string(data), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to write slot")
	}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
