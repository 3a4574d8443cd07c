package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// MockShareLinkRepository is a mock implementation of ShareLinkRepository.
type MockShareLinkRepository struct {
	mock.Mock
}

func (m *MockShareLinkRepository) Create(ctx context.Context, link *model.ShareLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockShareLinkRepository) FindByCode(ctx context.Context, code string) (*model.ShareLink, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) FindActive(ctx context.Context, code string, now time.Time) (*model.ShareLink, error) {
	args := m.Called(ctx, code, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) TouchAccess(ctx context.Context, code string, now time.Time) error {
	args := m.Called(ctx, code, now)
	return args.Error(0)
}

func (m *MockShareLinkRepository) DeleteByCode(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockShareLinkRepository) ListByApp(ctx context.Context, appID string) ([]dto.ShareLinkWithCounts, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ShareLinkWithCounts), args.Error(1)
}

// MockAppRepository is a mock implementation of AppRepository.
type MockAppRepository struct {
	mock.Mock
}

func (m *MockAppRepository) Create(ctx context.Context, app *model.App) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockAppRepository) Save(ctx context.Context, app *model.App) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockAppRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAppRepository) FindByID(ctx context.Context, id string) (*model.App, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.App), args.Error(1)
}

func (m *MockAppRepository) FindBySlug(ctx context.Context, slug string) (*model.App, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.App), args.Error(1)
}

func (m *MockAppRepository) FindBySlugForOwner(ctx context.Context, slug, ownerID string) (*model.App, error) {
	args := m.Called(ctx, slug, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.App), args.Error(1)
}

func (m *MockAppRepository) FindWithHistory(ctx context.Context, id string) (*model.App, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.App), args.Error(1)
}

func (m *MockAppRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.App, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.App), args.Error(1)
}

func (m *MockAppRepository) ListWithUpdates(ctx context.Context, ownerID string) ([]model.App, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.App), args.Error(1)
}

// MockFeedbackRepository is a mock implementation of FeedbackRepository.
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) ListByCode(ctx context.Context, code string) ([]model.Feedback, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feedback), args.Error(1)
}

// MockClientTaskRepository is a mock implementation of ClientTaskRepository.
type MockClientTaskRepository struct {
	mock.Mock
}

func (m *MockClientTaskRepository) Create(ctx context.Context, task *model.ClientTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockClientTaskRepository) FindByID(ctx context.Context, id string) (*model.ClientTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientTask), args.Error(1)
}

func (m *MockClientTaskRepository) ListByCode(ctx context.Context, code string) ([]model.ClientTask, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClientTask), args.Error(1)
}

func (m *MockClientTaskRepository) ListByApp(ctx context.Context, appID string) ([]model.ClientTask, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClientTask), args.Error(1)
}

func (m *MockClientTaskRepository) UpdateStatus(ctx context.Context, id string, status model.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockClientTaskRepository) Complete(ctx context.Context, taskID string, completion *model.TaskCompletion) (*model.ClientTask, error) {
	args := m.Called(ctx, taskID, completion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientTask), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockUpdateRepository is a mock implementation of UpdateRepository.
type MockUpdateRepository struct {
	mock.Mock
}

func (m *MockUpdateRepository) Create(ctx context.Context, update *model.Update) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockUpdateRepository) ListByApp(ctx context.Context, appID string) ([]model.Update, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Update), args.Error(1)
}

func (m *MockUpdateRepository) Delete(ctx context.Context, appID, id string) error {
	args := m.Called(ctx, appID, id)
	return args.Error(0)
}

// MockDeploymentRepository is a mock implementation of DeploymentRepository.
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) Create(ctx context.Context, deployment *model.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockDeploymentRepository) ListByApp(ctx context.Context, appID string) ([]model.Deployment, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) Delete(ctx context.Context, appID, id string) error {
	args := m.Called(ctx, appID, id)
	return args.Error(0)
}
