// Package app wires the client state layer together. The stores are
// explicit instances owned by the App rather than package-level
// singletons, so consumers receive them by reference and tests can
// build isolated worlds.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ninetd/ninetd/internal/kv"
	"github.com/ninetd/ninetd/internal/store"
)

// App owns every client store plus the durable medium behind them.
type App struct {
	KV       *kv.Store
	Tasks    *store.TaskStore
	Logs     *store.LogStore
	Toasts   *store.ToastRelay
	Features *store.FeatureStore
	Theme    *store.ThemeStore
	Layout   *store.LayoutStore
	Updates  *store.UpdateFeed

	logger zerolog.Logger
}

// New opens the durable medium at dataPath and constructs the stores
// with their dependencies injected. Call Init to hydrate state.
func New(dataPath string, logger zerolog.Logger) (*App, error) {
	kvs, err := kv.Open(dataPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open durable state: %w", err)
	}

	logs := store.NewLogStore(kvs, logger)
	return &App{
		KV:       kvs,
		Tasks:    store.NewTaskStore(kvs, logs, logger),
		Logs:     logs,
		Toasts:   store.NewToastRelay(logger),
		Features: store.NewFeatureStore(kvs, logger),
		Theme:    store.NewThemeStore(kvs, logger),
		Layout:   store.NewLayoutStore(kvs, logger),
		Updates:  store.NewUpdateFeed(kvs, logger),
		logger:   logger.With().Str("component", "app").Logger(),
	}, nil
}

// Init hydrates every store from its durable slot. Missing or corrupt
// slots fall back to defaults; Init never fails.
func (a *App) Init() {
	a.Tasks.Load()
	a.Logs.Load()
	a.Features.Load()
	a.Theme.Load()
	a.Layout.Load()
	a.Updates.Load()
	a.logger.Info().Int("tasks", a.Tasks.Len()).Int("logs", a.Logs.Len()).Msg("state hydrated")
}

// Close releases the durable medium. Stores persist write-through, so
// there is nothing to flush.
func (a *App) Close() error {
	return a.KV.Close()
}
