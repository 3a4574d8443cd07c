package repository

import (
	"context"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// UserRepository persists the owner account.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
