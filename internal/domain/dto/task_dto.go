package dto

import (
	"time"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// CreateTaskRequest submits a task request through a share link.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required,min=1,max=2000"`
	ClientName  *string `json:"clientName"`
}

// TaskResponse is returned after a client submits a task.
type TaskResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      model.TaskStatus `json:"status"`
	ClientName  *string          `json:"clientName"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	AppName     string           `json:"appName"`
}

// UpdateTaskStatusRequest moves a task through the owner-side state
// machine. COMPLETED is rejected here; only the completion operation may
// reach it.
type UpdateTaskStatusRequest struct {
	Status model.TaskStatus `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED REJECTED"`
}

// CompleteTaskRequest supplies the mandatory completion evidence.
type CompleteTaskRequest struct {
	CompletedBy string  `json:"completedBy" validate:"required,min=1,max=255"`
	Feedback    string  `json:"feedback" validate:"required,min=1,max=2000"`
	Notes       *string `json:"notes"`
}
