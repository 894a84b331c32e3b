package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ninetd/ninetd/internal/models"
	"github.com/ninetd/ninetd/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
)

// TaskService handles server-side task business logic. Tasks are always
// scoped to their owning user; operations on other users' rows silently
// do nothing, mirroring the ownership filter in the repository.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// TaskInput represents input for creating or overwriting a task
type TaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	Tags        []string
}

// List returns the user's tasks, newest first
func (s *TaskService) List(userID uint64) ([]models.TaskRecord, error) {
	tasks, err := s.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create stores a new task for the user, filling in the wire defaults
// for missing status and priority.
func (s *TaskService) Create(userID uint64, input TaskInput) (*models.TaskRecord, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	task := &models.TaskRecord{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      defaultString(input.Status, models.RecordStatusOpen),
		Priority:    defaultString(input.Priority, models.RecordPriorityMedium),
		DueDate:     input.DueDate,
		Tags:        input.Tags,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update overwrites the task's fields. Unknown ids are a silent no-op.
func (s *TaskService) Update(userID, id uint64, input TaskInput) error {
	if input.Title == "" {
		return ErrTitleRequired
	}
	task := &models.TaskRecord{
		Title:       input.Title,
		Description: input.Description,
		Status:      defaultString(input.Status, models.RecordStatusOpen),
		Priority:    defaultString(input.Priority, models.RecordPriorityMedium),
		DueDate:     input.DueDate,
		Tags:        input.Tags,
	}
	if err := s.taskRepo.Update(userID, id, task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes the task. Unknown ids are a silent no-op.
func (s *TaskService) Delete(userID, id uint64) error {
	if err := s.taskRepo.Delete(userID, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
