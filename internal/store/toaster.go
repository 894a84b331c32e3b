package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ninetd/ninetd/internal/models"
)

// DefaultToastDelay is how long a toast stays up before auto-dismissal.
const DefaultToastDelay = 4000 * time.Millisecond

// ToastRelay holds the ephemeral notification list. Nothing here is
// persisted; toasts vanish on restart.
type ToastRelay struct {
	mu     sync.Mutex
	toasts []models.Toast
	delay  time.Duration
	logger zerolog.Logger
}

// NewToastRelay creates a relay with the standard auto-dismiss delay.
func NewToastRelay(logger zerolog.Logger) *ToastRelay {
	return &ToastRelay{
		delay:  DefaultToastDelay,
		logger: logger.With().Str("component", "store.toasts").Logger(),
	}
}

// Push assigns a fresh id, appends the toast and schedules its removal
// after the relay delay. The timer is never cancelled: if the toast was
// dismissed early, the scheduled removal finds nothing and does nothing.
func (r *ToastRelay) Push(t models.Toast) models.Toast {
	t.ID = uuid.New().String()
	r.mu.Lock()
	r.toasts = append(r.toasts, t)
	r.mu.Unlock()

	time.AfterFunc(r.delay, func() {
		r.Remove(t.ID)
	})
	return t
}

// Remove deletes a toast by id. Removing an absent id is a no-op, which
// makes the timer callback and explicit dismissal safely interchangeable.
func (r *ToastRelay) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.toasts {
		if t.ID == id {
			r.toasts = append(r.toasts[:i], r.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns a snapshot of the visible toasts in push order.
func (r *ToastRelay) Toasts() []models.Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}
