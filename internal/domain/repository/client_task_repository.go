package repository

import (
	"context"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// ClientTaskRepository persists client tasks and their completions.
type ClientTaskRepository interface {
	Create(ctx context.Context, task *model.ClientTask) error

	// FindByID returns the task with its completion (if any) preloaded,
	// or (nil, nil) when absent.
	FindByID(ctx context.Context, id string) (*model.ClientTask, error)

	// ListByCode returns tasks submitted through the share code, newest
	// first, completions preloaded.
	ListByCode(ctx context.Context, code string) ([]model.ClientTask, error)

	// ListByApp returns tasks across all of the app's share links.
	ListByApp(ctx context.Context, appID string) ([]model.ClientTask, error)

	// UpdateStatus sets the status. The caller is responsible for state
	// machine validation.
	UpdateStatus(ctx context.Context, id string, status model.TaskStatus) error

	// Complete atomically creates the completion record and flips the
	// task to COMPLETED. Exactly one concurrent caller succeeds: a second
	// attempt fails with errors.ErrTaskAlreadyCompleted, and a task
	// already in a terminal state fails with errors.ErrInvalidTransition.
	Complete(ctx context.Context, taskID string, completion *model.TaskCompletion) (*model.ClientTask, error)
}

// FeedbackRepository persists client feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error

	// ListByCode returns feedback for the share code, newest first.
	ListByCode(ctx context.Context, code string) ([]model.Feedback, error)
}
