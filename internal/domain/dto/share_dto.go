package dto

import (
	"time"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// CreateShareLinkRequest creates a share link for an app. Preset and
// CustomPermissions are alternatives; when both are supplied the explicit
// custom flags win.
type CreateShareLinkRequest struct {
	Preset            string             `json:"preset" validate:"omitempty,oneof=view_only can_comment full_access"`
	CustomPermissions *model.Permissions `json:"customPermissions"`
	ExpiresAt         *time.Time         `json:"expiresAt"`
}

// ChildCounts mirrors the denormalized child row counts returned with each
// link in the owner's management view.
type ChildCounts struct {
	Feedbacks   int64 `json:"feedbacks"`
	ClientTasks int64 `json:"clientTasks"`
}

// ShareLinkWithCounts is a share link plus its attached content counts.
type ShareLinkWithCounts struct {
	model.ShareLink
	Count ChildCounts `json:"_count"`
}

// ShareLinkResponse is returned from link creation.
type ShareLinkResponse struct {
	model.ShareLink
	ShareURL string `json:"shareUrl"`
}
