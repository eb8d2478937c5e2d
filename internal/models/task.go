package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority is derived from due-date proximity and never stored.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// FarmTask is a unit of farm work tracked against a due date.
type FarmTask struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FarmerID    uuid.UUID  `gorm:"type:uuid;not null" json:"farmer_id"`
	ListingID   *uuid.UUID `gorm:"type:uuid" json:"listing_id,omitempty"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `gorm:"not null;default:'pending'" json:"status"`
	DueDate     time.Time  `gorm:"not null" json:"due_date"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Priority buckets the task by how close its due date is to now: within one
// calendar day is high, within seven is medium, anything further is low.
func (t *FarmTask) Priority(now time.Time) TaskPriority {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(t.DueDate.Year(), t.DueDate.Month(), t.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(today).Hours() / 24)
	switch {
	case days <= 1:
		return TaskPriorityHigh
	case days <= 7:
		return TaskPriorityMedium
	default:
		return TaskPriorityLow
	}
}
