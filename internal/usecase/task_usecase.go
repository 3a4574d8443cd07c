package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	"github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

// TaskUseCase is the owner-side workflow over client tasks: status
// transitions and the completion operation with mandatory evidence.
type TaskUseCase struct {
	taskRepo repository.ClientTaskRepository
	appRepo  repository.AppRepository
	logger   *zap.Logger
}

// NewTaskUseCase creates the task workflow usecase.
func NewTaskUseCase(taskRepo repository.ClientTaskRepository, appRepo repository.AppRepository, logger *zap.Logger) *TaskUseCase {
	return &TaskUseCase{
		taskRepo: taskRepo,
		appRepo:  appRepo,
		logger:   logger,
	}
}

// ListForApp returns all client tasks submitted against the owner's app.
func (uc *TaskUseCase) ListForApp(ctx context.Context, ownerID, appSlug string) ([]model.ClientTask, error) {
	app, err := uc.appRepo.FindBySlugForOwner(ctx, appSlug, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up app: %w", err)
	}
	if app == nil {
		return nil, domainerrors.ErrAppNotFound
	}
	tasks, err := uc.taskRepo.ListByApp(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// SetStatus moves a task through the state machine. COMPLETED is always
// refused here: it can only be reached through Complete, which writes the
// evidence record in the same transaction as the status flip.
func (uc *TaskUseCase) SetStatus(ctx context.Context, taskID string, status model.TaskStatus) (*model.ClientTask, error) {
	if status == model.TaskStatusCompleted {
		return nil, fmt.Errorf("%w: use the completion operation to mark tasks completed", domainerrors.ErrInvalidTransition)
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domainerrors.ErrInvalidTransition, status)
	}

	task, err := uc.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}
	if task == nil {
		return nil, domainerrors.ErrTaskNotFound
	}

	if !task.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domainerrors.ErrInvalidTransition, task.Status, status)
	}

	if err := uc.taskRepo.UpdateStatus(ctx, taskID, status); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	uc.logger.Info("Task status updated",
		zap.String("task_id", taskID),
		zap.String("from", string(task.Status)),
		zap.String("to", string(status)),
	)

	task.Status = status
	return task, nil
}

// Complete marks a task COMPLETED with the supplied evidence. The check
// for an existing completion and the creation of the record plus status
// flip are one atomic unit in the repository, so exactly one of two racing
// calls succeeds.
func (uc *TaskUseCase) Complete(ctx context.Context, taskID string, req dto.CompleteTaskRequest) (*model.ClientTask, error) {
	task, err := uc.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}
	if task == nil {
		return nil, domainerrors.ErrTaskNotFound
	}
	if task.Completion != nil {
		return nil, domainerrors.ErrTaskAlreadyCompleted
	}
	if task.Status == model.TaskStatusRejected {
		return nil, fmt.Errorf("%w: rejected tasks cannot be completed", domainerrors.ErrInvalidTransition)
	}

	completion := &model.TaskCompletion{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		CompletedBy: req.CompletedBy,
		Feedback:    req.Feedback,
		Notes:       req.Notes,
	}

	completed, err := uc.taskRepo.Complete(ctx, taskID, completion)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Task completed",
		zap.String("task_id", taskID),
		zap.String("completed_by", req.CompletedBy),
	)
	return completed, nil
}
