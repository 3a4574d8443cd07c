package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainRepo "github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

// Repositories bundles every persistence adapter for injection into the
// usecase layer.
type Repositories struct {
	User       domainRepo.UserRepository
	App        domainRepo.AppRepository
	Update     domainRepo.UpdateRepository
	Deployment domainRepo.DeploymentRepository
	ShareLink  domainRepo.ShareLinkRepository
	Feedback   domainRepo.FeedbackRepository
	ClientTask domainRepo.ClientTaskRepository
}

// NewRepositories wires all repositories against one database handle.
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db, logger),
		App:        NewAppRepository(db, logger),
		Update:     NewUpdateRepository(db, logger),
		Deployment: NewDeploymentRepository(db, logger),
		ShareLink:  NewShareLinkRepository(db, logger),
		Feedback:   NewFeedbackRepository(db, logger),
		ClientTask: NewClientTaskRepository(db, logger),
	}
}
