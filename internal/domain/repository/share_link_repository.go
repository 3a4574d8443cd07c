package repository

import (
	"context"
	"time"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// ShareLinkRepository persists share links. Lookups return (nil, nil) when
// no row matches so callers can merge absence with inactive/expired states.
type ShareLinkRepository interface {
	// Create inserts the link. A code uniqueness violation is reported as
	// domain errors.ErrCodeTaken so the caller can retry with a new code.
	Create(ctx context.Context, link *model.ShareLink) error

	// FindByCode returns the link regardless of state, with its app
	// preloaded, or (nil, nil) when absent.
	FindByCode(ctx context.Context, code string) (*model.ShareLink, error)

	// FindActive returns the link only when it is active and not expired
	// at the given instant; (nil, nil) otherwise.
	FindActive(ctx context.Context, code string, now time.Time) (*model.ShareLink, error)

	// TouchAccess increments the access counter and stamps the last
	// access time. Best-effort telemetry; callers swallow its error.
	TouchAccess(ctx context.Context, code string, now time.Time) error

	// DeleteByCode removes the link. Feedback and client task rows keyed
	// by the code are removed by the database cascade.
	DeleteByCode(ctx context.Context, code string) error

	// ListByApp returns every link for the app, newest first, with
	// feedback and task counts attached.
	ListByApp(ctx context.Context, appID string) ([]dto.ShareLinkWithCounts, error)
}
