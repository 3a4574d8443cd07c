package dto

import (
	"time"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// CreateAppRequest registers a new app.
type CreateAppRequest struct {
	Name           string          `json:"name" validate:"required,min=2,max=255"`
	Description    *string         `json:"description"`
	ProposedDomain *string         `json:"proposedDomain" validate:"omitempty,url"`
	GithubURL      *string         `json:"githubUrl" validate:"omitempty,url"`
	Status         model.AppStatus `json:"status" validate:"omitempty,oneof=IDEA PLANNING BUILDING TESTING DEPLOYING LIVE PAUSED ARCHIVED"`
	Client         *string         `json:"client"`
	Platform       *string         `json:"platform"`
}

// UpdateAppRequest edits an existing app. Nil fields are left unchanged.
type UpdateAppRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=2,max=255"`
	Description    *string          `json:"description"`
	ProposedDomain *string          `json:"proposedDomain" validate:"omitempty,url"`
	GithubURL      *string          `json:"githubUrl" validate:"omitempty,url"`
	Status         *model.AppStatus `json:"status" validate:"omitempty,oneof=IDEA PLANNING BUILDING TESTING DEPLOYING LIVE PAUSED ARCHIVED"`
	Client         *string          `json:"client"`
	Platform       *string          `json:"platform"`
}

// CreateUpdateRequest records a progress update.
type CreateUpdateRequest struct {
	Progress int                `json:"progress" validate:"min=0,max=100"`
	Summary  string             `json:"summary" validate:"required,min=1"`
	Blockers *string            `json:"blockers"`
	Tags     []string           `json:"tags"`
	Period   model.UpdatePeriod `json:"period" validate:"omitempty,oneof=DAY WEEK MONTH"`
}

// CreateDeploymentRequest records a deployment.
type CreateDeploymentRequest struct {
	Environment string     `json:"environment" validate:"required,min=1,max=50"`
	Version     string     `json:"version" validate:"max=100"`
	Notes       *string    `json:"notes"`
	DeployedAt  *time.Time `json:"deployedAt"`
}

// AppStats is the per-app roll-up for the dashboard.
type AppStats struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Slug                 string          `json:"slug"`
	Status               model.AppStatus `json:"status"`
	CompletionPercentage int             `json:"completionPercentage"`
	BlockerCount         int             `json:"blockerCount"`
	LastUpdateDate       *time.Time      `json:"lastUpdateDate"`
	UpdateCount          int             `json:"updateCount"`
}
