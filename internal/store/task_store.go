package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ninetd/ninetd/internal/kv"
	"github.com/ninetd/ninetd/internal/models"
)

// LogSink is the capability the task store needs from the activity log.
// Injecting it keeps the cross-store coupling explicit and lets tests
// substitute a fake sink.
type LogSink interface {
	Add(in LogInput) models.LogEntry
}

type taskBlob struct {
	Tasks []models.Task `json:"tasks"`
}

// TaskStore owns the ordered task collection. Every mutation persists
// the full collection write-through and emits exactly one activity log
// entry; mutations on unknown ids are silent no-ops that emit nothing.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []models.Task
	kv     *kv.Store
	logs   LogSink
	logger zerolog.Logger
	now    func() time.Time
}

// NewTaskStore creates a task store backed by the durable medium and
// emitting into the given log sink.
func NewTaskStore(kvs *kv.Store, logs LogSink, logger zerolog.Logger) *TaskStore {
	return &TaskStore{
		kv:     kvs,
		logs:   logs,
		logger: logger.With().Str("component", "store.tasks").Logger(),
		now:    time.Now,
	}
}

// Load hydrates the collection from its durable slot.
func (s *TaskStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b taskBlob
	if s.kv.Get(kv.KeyTasks, &b) {
		s.tasks = b.Tasks
	}
}

// Tasks returns a snapshot of the collection in insertion order.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Len returns the current number of tasks.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// AddTask inserts a fully-formed task. The caller supplies every field
// including a collision-free id; the store overwrites both timestamps
// with the current time. Emits a created log entry.
func (s *TaskStore) AddTask(task models.Task) models.Task {
	s.mu.Lock()
	now := s.now()
	task.CreatedAt = now
	task.UpdatedAt = now
	s.tasks = append(s.tasks, task)
	s.persist()
	s.mu.Unlock()

	s.logs.Add(LogInput{
		Type:     models.LogCreated,
		Title:    "Task Created",
		Message:  createdMessage(task),
		Metadata: map[string]string{"taskId": task.ID},
	})
	return task
}

// UpdateTask merges the patch into the matching task and bumps
// updatedAt. Unknown ids are a no-op with no log. The emitted updated
// log lists the patched field names, not a value diff.
func (s *TaskStore) UpdateTask(id string, patch TaskPatch) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	changed := patch.apply(&s.tasks[idx])
	s.tasks[idx].UpdatedAt = s.now()
	task := s.tasks[idx]
	s.persist()
	s.mu.Unlock()

	s.logs.Add(LogInput{
		Type:     models.LogUpdated,
		Title:    "Task Updated",
		Message:  fmt.Sprintf("“%s” changed: %s", task.Title, strings.Join(changed, ", ")),
		Metadata: map[string]string{"taskId": task.ID},
	})
	return true
}

// RemoveTask deletes the task if present. Unknown ids are a no-op with
// no log. The deleted log carries the title captured before removal.
func (s *TaskStore) RemoveTask(id string) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	title := s.tasks[idx].Title
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.persist()
	s.mu.Unlock()

	s.logs.Add(LogInput{
		Type:     models.LogDeleted,
		Title:    "Task Deleted",
		Message:  fmt.Sprintf("“%s” removed.", title),
		Metadata: map[string]string{"taskId": id},
	})
	return true
}

// ToggleComplete flips status between completed and pending only: a
// task leaving completed always lands on pending, even if it was
// in-progress or overdue before completion. completedAt is set or
// cleared to match and updatedAt is bumped.
func (s *TaskStore) ToggleComplete(id string) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	now := s.now()
	task := &s.tasks[idx]
	var logType models.LogType
	var title, message string
	if task.Status == models.StatusCompleted {
		task.Status = models.StatusPending
		task.CompletedAt = nil
		logType = models.LogReopened
		title = "Task Reopened"
		message = fmt.Sprintf("“%s” moved back to pending.", task.Title)
	} else {
		task.Status = models.StatusCompleted
		task.CompletedAt = &now
		logType = models.LogCompleted
		title = "Task Completed"
		message = fmt.Sprintf("“%s” is done.", task.Title)
	}
	task.UpdatedAt = now
	taskID := task.ID
	s.persist()
	s.mu.Unlock()

	s.logs.Add(LogInput{
		Type:     logType,
		Title:    title,
		Message:  message,
		Metadata: map[string]string{"taskId": taskID},
	})
	return true
}

// ToggleFavorite flips the favorite flag. Favorite toggling is
// lightweight: unlike the other mutations it does not bump updatedAt.
func (s *TaskStore) ToggleFavorite(id string) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.tasks[idx].Favorite = !s.tasks[idx].Favorite
	task := s.tasks[idx]
	s.persist()
	s.mu.Unlock()

	// favorite toggles carry their own yellow accent, not the updated default
	s.logs.Add(LogInput{
		Type:     models.LogUpdated,
		Title:    "Task Updated",
		Message:  fmt.Sprintf("“%s” favorite set to %t.", task.Title, task.Favorite),
		Color:    "#eab308",
		Metadata: map[string]string{"taskId": task.ID},
	})
	return true
}

// ClearTasks empties the collection in one operation and emits a single
// deleted log entry instead of one per task.
func (s *TaskStore) ClearTasks() {
	s.mu.Lock()
	n := len(s.tasks)
	s.tasks = nil
	s.persist()
	s.mu.Unlock()

	s.logs.Add(LogInput{
		Type:    models.LogDeleted,
		Title:   "All tasks cleared",
		Message: fmt.Sprintf("Removed %d tasks.", n),
		Color:   "#dc2626",
	})
}

func (s *TaskStore) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) persist() {
	s.kv.Put(kv.KeyTasks, taskBlob{Tasks: s.tasks})
}

func createdMessage(t models.Task) string {
	parts := []string{
		fmt.Sprintf("priority %s", t.Priority),
		fmt.Sprintf("status %s", t.Status),
	}
	if t.DueDate != nil {
		parts = append(parts, "due "+t.DueDate.Format("Jan 2, 2006"))
	} else {
		parts = append(parts, "no due date")
	}
	if t.Description != "" {
		parts = append(parts, t.Description)
	}
	return fmt.Sprintf("“%s” added (%s)", t.Title, strings.Join(parts, ", "))
}
