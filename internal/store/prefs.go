package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/ninetd/ninetd/internal/kv"
	"github.com/ninetd/ninetd/internal/models"
)

// The preference stores are plain load/save records with no invariants.

// FeatureStore persists the cosmetic feature toggles.
type FeatureStore struct {
	mu       sync.Mutex
	features models.Features
	kv       *kv.Store
	logger   zerolog.Logger
}

func NewFeatureStore(kvs *kv.Store, logger zerolog.Logger) *FeatureStore {
	return &FeatureStore{
		features: models.DefaultFeatures(),
		kv:       kvs,
		logger:   logger.With().Str("component", "store.features").Logger(),
	}
}

func (s *FeatureStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var f models.Features
	if s.kv.Get(kv.KeyFeatures, &f) {
		s.features = f
	}
}

func (s *FeatureStore) Features() models.Features {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.features
}

// SetToggle updates one toggle by its blob key and persists the whole
// record. Unknown keys return false and change nothing.
func (s *FeatureStore) SetToggle(key string, on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "animations":
		s.features.Animations = on
	case "sidebarGlow":
		s.features.SidebarGlow = on
	case "toasters":
		s.features.Toasters = on
	case "compactMode":
		s.features.CompactMode = on
	case "accentGradients":
		s.features.AccentGradients = on
	default:
		return false
	}
	s.kv.Put(kv.KeyFeatures, s.features)
	return true
}

// ThemeStore persists the theme preference.
type ThemeStore struct {
	mu     sync.Mutex
	theme  models.Theme
	kv     *kv.Store
	logger zerolog.Logger
}

func NewThemeStore(kvs *kv.Store, logger zerolog.Logger) *ThemeStore {
	return &ThemeStore{
		theme:  models.DefaultTheme(),
		kv:     kvs,
		logger: logger.With().Str("component", "store.theme").Logger(),
	}
}

func (s *ThemeStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var t models.Theme
	if s.kv.Get(kv.KeyTheme, &t) {
		s.theme = t
	}
}

func (s *ThemeStore) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *ThemeStore) Set(t models.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
	s.kv.Put(kv.KeyTheme, s.theme)
}

// LayoutStore persists the layout preference.
type LayoutStore struct {
	mu     sync.Mutex
	layout models.Layout
	kv     *kv.Store
	logger zerolog.Logger
}

func NewLayoutStore(kvs *kv.Store, logger zerolog.Logger) *LayoutStore {
	return &LayoutStore{
		layout: models.DefaultLayout(),
		kv:     kvs,
		logger: logger.With().Str("component", "store.layout").Logger(),
	}
}

func (s *LayoutStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var l models.Layout
	if s.kv.Get(kv.KeyLayout, &l) {
		s.layout = l
	}
}

func (s *LayoutStore) Layout() models.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout
}

func (s *LayoutStore) Set(l models.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout = l
	s.kv.Put(kv.KeyLayout, s.layout)
}
