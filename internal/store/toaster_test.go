package store

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ninetd/ninetd/internal/models"
)

func TestToastRelay_PushAssignsID(t *testing.T) {
	r := NewToastRelay(zerolog.Nop())
	r.delay = time.Minute

	toast := r.Push(models.Toast{Title: "Saved", Type: models.ToastSuccess})
	require.NotEmpty(t, toast.ID)

	visible := r.Toasts()
	require.Len(t, visible, 1)
	require.Equal(t, toast.ID, visible[0].ID)
}

func TestToastRelay_AutoRemovesAfterDelay(t *testing.T) {
	r := NewToastRelay(zerolog.Nop())
	r.delay = 10 * time.Millisecond

	r.Push(models.Toast{Title: "Gone soon", Type: models.ToastInfo})
	require.Len(t, r.Toasts(), 1)

	require.Eventually(t, func() bool {
		return len(r.Toasts()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestToastRelay_EarlyDismissBeatsTimer(t *testing.T) {
	r := NewToastRelay(zerolog.Nop())
	r.delay = 20 * time.Millisecond

	toast := r.Push(models.Toast{Title: "Dismiss me", Type: models.ToastError})
	r.Remove(toast.ID)
	require.Empty(t, r.Toasts())

	// the timer fires on an already-removed id without complaint
	time.Sleep(40 * time.Millisecond)
	require.Empty(t, r.Toasts())
}

func TestToastRelay_RemoveUnknownIsNoop(t *testing.T) {
	r := NewToastRelay(zerolog.Nop())
	r.delay = time.Minute

	r.Push(models.Toast{Title: "Stays", Type: models.ToastSuccess})
	r.Remove("does-not-exist")
	require.Len(t, r.Toasts(), 1)
}

func TestToastRelay_PushOrderPreserved(t *testing.T) {
	r := NewToastRelay(zerolog.Nop())
	r.delay = time.Minute

	r.Push(models.Toast{Title: "first"})
	r.Push(models.Toast{Title: "second"})

	visible := r.Toasts()
	require.Equal(t, "first", visible[0].Title)
	require.Equal(t, "second", visible[1].Title)
}
