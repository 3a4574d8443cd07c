package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	"github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

// maxCodeAttempts bounds the collision retry loop on link creation. The
// keyspace makes collisions vanishingly rare; hitting the bound means
// something is wrong and the create fails closed.
const maxCodeAttempts = 10

// CodeGenerator produces share codes. Injected so tests can force
// collisions.
type CodeGenerator func() string

// ShareLinkUseCase owns the share link lifecycle: creation with the
// uniqueness guarantee, the owner management view, and cascading revocation.
type ShareLinkUseCase struct {
	shareLinkRepo repository.ShareLinkRepository
	appRepo       repository.AppRepository
	generate      CodeGenerator
	baseURL       string
	logger        *zap.Logger
}

// NewShareLinkUseCase creates a share link usecase. A nil generator uses
// the production crypto/rand generator.
func NewShareLinkUseCase(
	shareLinkRepo repository.ShareLinkRepository,
	appRepo repository.AppRepository,
	generate CodeGenerator,
	baseURL string,
	logger *zap.Logger,
) *ShareLinkUseCase {
	if generate == nil {
		generate = GenerateShareCode
	}
	return &ShareLinkUseCase{
		shareLinkRepo: shareLinkRepo,
		appRepo:       appRepo,
		generate:      generate,
		baseURL:       baseURL,
		logger:        logger,
	}
}

// Create issues a new share link for the owner's app. The code is drawn
// before persistence and retried on uniqueness collisions up to the bound;
// the database constraint, not a pre-check, is the arbiter.
func (uc *ShareLinkUseCase) Create(ctx context.Context, ownerID, appSlug string, req dto.CreateShareLinkRequest) (*dto.ShareLinkResponse, error) {
	app, err := uc.appRepo.FindBySlugForOwner(ctx, appSlug, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up app: %w", err)
	}
	if app == nil {
		return nil, domainerrors.ErrAppNotFound
	}

	permissions, err := model.ResolvePermissions(req.Preset, req.CustomPermissions)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		link := &model.ShareLink{
			ID:          uuid.New().String(),
			Code:        uc.generate(),
			AppID:       app.ID,
			Permissions: permissions,
			IsActive:    true,
			ExpiresAt:   req.ExpiresAt,
		}

		err := uc.shareLinkRepo.Create(ctx, link)
		if err == nil {
			uc.logger.Info("Share link created",
				zap.String("app_id", app.ID),
				zap.String("code", link.Code),
				zap.Bool("view", permissions.View),
				zap.Bool("comment", permissions.Comment),
				zap.Bool("create_tasks", permissions.CreateTasks),
			)
			link.App = app
			return &dto.ShareLinkResponse{
				ShareLink: *link,
				ShareURL:  uc.ShareURL(link.Code),
			}, nil
		}
		if errors.Is(err, domainerrors.ErrCodeTaken) {
			uc.logger.Warn("Share code collision, retrying",
				zap.String("app_id", app.ID),
				zap.Int("attempt", attempt+1),
			)
			continue
		}
		return nil, fmt.Errorf("failed to create share link: %w", err)
	}

	uc.logger.Error("Share code generation exhausted",
		zap.String("app_id", app.ID),
		zap.Int("attempts", maxCodeAttempts),
	)
	return nil, domainerrors.ErrCodeExhausted
}

// ListForApp returns every link for the owner's app, active or not, with
// denormalized feedback/task counts.
func (uc *ShareLinkUseCase) ListForApp(ctx context.Context, ownerID, appSlug string) ([]dto.ShareLinkWithCounts, error) {
	app, err := uc.appRepo.FindBySlugForOwner(ctx, appSlug, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up app: %w", err)
	}
	if app == nil {
		return nil, domainerrors.ErrAppNotFound
	}

	links, err := uc.shareLinkRepo.ListByApp(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list share links: %w", err)
	}
	return links, nil
}

// Get returns a single link with counts for the owner's management view.
func (uc *ShareLinkUseCase) Get(ctx context.Context, ownerID, code string) (*model.ShareLink, error) {
	link, err := uc.findOwned(ctx, ownerID, code)
	if err != nil {
		return nil, err
	}
	return link, nil
}

// Revoke deletes the link after verifying the requester owns its app.
// Feedback and client tasks keyed by the code are removed by the database
// cascade, so no orphaned client content survives.
func (uc *ShareLinkUseCase) Revoke(ctx context.Context, ownerID, code string) error {
	link, err := uc.findOwned(ctx, ownerID, code)
	if err != nil {
		return err
	}

	if err := uc.shareLinkRepo.DeleteByCode(ctx, link.Code); err != nil {
		return fmt.Errorf("failed to revoke share link: %w", err)
	}

	uc.logger.Info("Share link revoked",
		zap.String("code", link.Code),
		zap.String("app_id", link.AppID),
	)
	return nil
}

// ShareURL builds the client-facing URL for a code.
func (uc *ShareLinkUseCase) ShareURL(code string) string {
	return fmt.Sprintf("%s/share/%s", strings.TrimRight(uc.baseURL, "/"), code)
}

// findOwned resolves a link and enforces ownership. Owners get a distinct
// forbidden outcome; only anonymous callers see merged not-found results.
func (uc *ShareLinkUseCase) findOwned(ctx context.Context, ownerID, code string) (*model.ShareLink, error) {
	link, err := uc.shareLinkRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up share link: %w", err)
	}
	if link == nil {
		return nil, domainerrors.ErrLinkNotFound
	}
	if link.App == nil || link.App.OwnerID != ownerID {
		return nil, domainerrors.ErrForbidden
	}
	return link, nil
}
