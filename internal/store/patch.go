package store

import (
	"time"

	"github.com/ninetd/ninetd/internal/models"
)

// TaskPatch is an explicit field-by-field update: a nil field is left
// untouched, a set field overwrites the task's value. DueDate clearing
// needs the dedicated flag since nil already means "not provided".
type TaskPatch struct {
	Title            *string
	Description      *string
	Status           *models.Status
	Priority         *models.Priority
	DueDate          *time.Time
	ClearDueDate     bool
	Tags             *[]string
	Category         *string
	Color            *string
	EstimateMinutes  *int
	TimeSpentMinutes *int
	Checklist        *[]models.Subtask
	Favorite         *bool
}

// apply writes the set fields onto the task and returns the names of
// the patched fields, in a fixed order.
func (p TaskPatch) apply(t *models.Task) []string {
	var changed []string
	if p.Title != nil {
		t.Title = *p.Title
		changed = append(changed, "title")
	}
	if p.Description != nil {
		t.Description = *p.Description
		changed = append(changed, "description")
	}
	if p.Status != nil {
		t.Status = *p.Status
		changed = append(changed, "status")
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
		changed = append(changed, "priority")
	}
	if p.ClearDueDate {
		t.DueDate = nil
		changed = append(changed, "dueDate")
	} else if p.DueDate != nil {
		t.DueDate = p.DueDate
		changed = append(changed, "dueDate")
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
		changed = append(changed, "tags")
	}
	if p.Category != nil {
		t.Category = *p.Category
		changed = append(changed, "category")
	}
	if p.Color != nil {
		t.Color = *p.Color
		changed = append(changed, "color")
	}
	if p.EstimateMinutes != nil {
		t.EstimateMinutes = p.EstimateMinutes
		changed = append(changed, "estimateMinutes")
	}
	if p.TimeSpentMinutes != nil {
		t.TimeSpentMinutes = p.TimeSpentMinutes
		changed = append(changed, "timeSpentMinutes")
	}
	if p.Checklist != nil {
		t.Checklist = *p.Checklist
		changed = append(changed, "checklist")
	}
	if p.Favorite != nil {
		t.Favorite = *p.Favorite
		changed = append(changed, "favorite")
	}
	return changed
}
