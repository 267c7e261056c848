package model

import "time"

// Status tracks where a task sits in its lifecycle.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// ParseStatus validates a wire value against the known statuses.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(s), true
	}
	return "", false
}

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority validates a wire value against the known priorities.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), true
	}
	return "", false
}

// Task represents a single item owned by exactly one user. The owner is set
// at creation and never changes. The category reference and the tag set are
// both replaceable as a whole.
type Task struct {
	ID          uint  `gorm:"primaryKey"`
	UserID      uint  `gorm:"index"`
	CategoryID  *uint `gorm:"index"`
	Title       string
	Description string
	Status      Status   `gorm:"index"`
	Priority    Priority `gorm:"index"`
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Category    *Category
	Tags        []Tag `gorm:"many2many:task_tags"`
}
