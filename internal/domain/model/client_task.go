package model

import (
	"database/sql/driver"
	"time"
)

// TaskStatus is the client task state machine. COMPLETED and REJECTED are
// terminal; COMPLETED is reachable only through the completion operation,
// which also writes the TaskCompletion evidence row.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusRejected   TaskStatus = "REJECTED"
)

// Valid reports whether the status is a known value.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusRejected
}

// CanTransitionTo reports whether the direct status change is allowed.
// COMPLETED is never reachable here; it is owned by the completion flow.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	if s.Terminal() {
		return false
	}
	switch next {
	case TaskStatusInProgress:
		return s == TaskStatusPending
	case TaskStatusRejected:
		return s == TaskStatusPending
	default:
		return false
	}
}

// Scan implements sql.Scanner.
func (s *TaskStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = TaskStatus(v)
	case []byte:
		*s = TaskStatus(v)
	}
	return nil
}

// Value implements driver.Valuer.
func (s TaskStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// ClientTask is a work request submitted by an anonymous client through a
// share link with the create_tasks permission.
type ClientTask struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	ShareCode   string          `gorm:"size:8;not null;index" json:"shareCode"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	ClientName  *string         `gorm:"size:255" json:"clientName"`
	Status      TaskStatus      `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Completion  *TaskCompletion `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"completion,omitempty"`
}

// TableName specifies the table name for GORM.
func (ClientTask) TableName() string {
	return "client_tasks"
}

// TaskCompletion is the mandatory evidence attached when a task is
// completed. Its existence is the completion invariant: the unique TaskID
// index makes a second completion attempt a constraint violation.
type TaskCompletion struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	TaskID      string    `gorm:"type:uuid;uniqueIndex;not null" json:"taskId"`
	CompletedBy string    `gorm:"size:255;not null" json:"completedBy"`
	Feedback    string    `gorm:"type:text;not null" json:"feedback"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	CompletedAt time.Time `json:"completedAt"`
}

// TableName specifies the table name for GORM.
func (TaskCompletion) TableName() string {
	return "task_completions"
}
