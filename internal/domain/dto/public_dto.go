package dto

import (
	"time"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// HistoryCounts summarizes an app's recorded history.
type HistoryCounts struct {
	Updates     int64 `json:"updates"`
	Deployments int64 `json:"deployments"`
}

// PublicApp is the subset of app data exposed through a share link.
type PublicApp struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Description    *string            `json:"description"`
	ProposedDomain *string            `json:"proposedDomain"`
	GithubURL      *string            `json:"githubUrl"`
	Status         model.AppStatus    `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	Updates        []model.Update     `json:"updates"`
	Deployments    []model.Deployment `json:"deployments"`
	Count          HistoryCounts      `json:"_count"`
}

// ShareInfo echoes the link metadata a viewer is allowed to see.
type ShareInfo struct {
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// PublicAppView is the payload of the public share view.
type PublicAppView struct {
	App         PublicApp         `json:"app"`
	Permissions model.Permissions `json:"permissions"`
	ShareInfo   ShareInfo         `json:"shareInfo"`
}

// CreateFeedbackRequest posts feedback through a share link.
type CreateFeedbackRequest struct {
	ClientName *string `json:"clientName"`
	Message    string  `json:"message" validate:"required,min=1,max=2000"`
}

// FeedbackResponse is returned after posting feedback.
type FeedbackResponse struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	ClientName *string   `json:"clientName"`
	CreatedAt  time.Time `json:"createdAt"`
	AppName    string    `json:"appName"`
}

// FeedbackItem is a single entry in the public feedback list.
type FeedbackItem struct {
	ID         string    `json:"id"`
	ClientName *string   `json:"clientName"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
