package app

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ninetd/ninetd/internal/models"
	"github.com/ninetd/ninetd/internal/store"
)

func TestAppWiresTaskMutationsIntoLog(t *testing.T) {
	a, err := New(":memory:", zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()
	a.Init()

	task := a.Tasks.AddTask(models.Task{
		ID:       uuid.New().String(),
		Title:    "Wire check",
		Status:   models.StatusPending,
		Priority: models.PriorityMedium,
	})

	logs := a.Logs.Logs()
	require.Len(t, logs, 1)
	require.Equal(t, models.LogCreated, logs[0].Type)
	require.Contains(t, logs[0].Message, "Wire check")
	require.Equal(t, task.ID, logs[0].Metadata["taskId"])
}

func TestAppIsolatedInstances(t *testing.T) {
	a, err := New(":memory:", zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()
	a.Init()

	b, err := New(":memory:", zerolog.Nop())
	require.NoError(t, err)
	defer b.Close()
	b.Init()

	a.Tasks.AddTask(models.Task{ID: uuid.New().String(), Title: "only in a"})

	require.Equal(t, 1, a.Tasks.Len())
	require.Equal(t, 0, b.Tasks.Len())
}

func TestAppStateSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	first, err := New(path, zerolog.Nop())
	require.NoError(t, err)
	first.Init()

	first.Tasks.AddTask(models.Task{
		ID:       uuid.New().String(),
		Title:    "Durable",
		Status:   models.StatusPending,
		Priority: models.PriorityLow,
	})
	first.Features.SetToggle("compactMode", true)
	first.Theme.Set(models.Theme{Mode: "dark"})
	require.NoError(t, first.Close())

	second, err := New(path, zerolog.Nop())
	require.NoError(t, err)
	defer second.Close()
	second.Init()

	require.Equal(t, 1, second.Tasks.Len())
	require.Equal(t, 1, second.Logs.Len())
	require.True(t, second.Features.Features().CompactMode)
	require.Equal(t, "dark", second.Theme.Theme().Mode)
}

func TestAppFreshStartDefaults(t *testing.T) {
	a, err := New(":memory:", zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()
	a.Init()

	require.Equal(t, 0, a.Tasks.Len())
	require.Equal(t, 0, a.Logs.Len())
	require.Equal(t, models.DefaultFeatures(), a.Features.Features())
	require.Equal(t, store.Insights{}, a.Logs.Insights())
	require.Empty(t, a.Toasts.Toasts())
}
