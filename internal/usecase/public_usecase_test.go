package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

const testCode = "aB3xK9mP"

func fixedClock() func() time.Time {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func activeLink(perms model.Permissions) *model.ShareLink {
	return &model.ShareLink{
		ID:          "link-1",
		Code:        testCode,
		AppID:       "app-1",
		App:         &model.App{ID: "app-1", Name: "My App", OwnerID: "owner-1"},
		Permissions: perms,
		IsActive:    true,
	}
}

func newPublicUseCase(shareRepo *MockShareLinkRepository, appRepo *MockAppRepository, feedbackRepo *MockFeedbackRepository, taskRepo *MockClientTaskRepository) *PublicUseCase {
	return NewPublicUseCase(shareRepo, appRepo, feedbackRepo, taskRepo, fixedClock(), zap.NewNop())
}

func TestGetAppView_MalformedCodeSkipsStorage(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	uc := newPublicUseCase(shareRepo, new(MockAppRepository), new(MockFeedbackRepository), new(MockClientTaskRepository))

	for _, code := range []string{"", "short", "with 0!!", "waytoolongcode"} {
		_, err := uc.GetAppView(context.Background(), code)
		assert.ErrorIs(t, err, domainerrors.ErrMalformedCode, "code %q", code)
	}
	shareRepo.AssertNotCalled(t, "FindActive")
}

func TestGetAppView_UnknownCodeIsNotFound(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).Return(nil, nil)

	uc := newPublicUseCase(shareRepo, new(MockAppRepository), new(MockFeedbackRepository), new(MockClientTaskRepository))

	_, err := uc.GetAppView(context.Background(), testCode)
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}

func TestGetAppView_ViewDisabledIsPermissionDenied(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	// view:false is honored even though every preset sets it.
	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).
		Return(activeLink(model.Permissions{Comment: true, CreateTasks: true}), nil)

	uc := newPublicUseCase(shareRepo, new(MockAppRepository), new(MockFeedbackRepository), new(MockClientTaskRepository))

	_, err := uc.GetAppView(context.Background(), testCode)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	shareRepo.AssertNotCalled(t, "TouchAccess")
}

func TestGetAppView_Succeeds(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	appRepo := new(MockAppRepository)

	link := activeLink(model.Permissions{View: true})
	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).Return(link, nil)
	shareRepo.On("TouchAccess", mock.Anything, testCode, mock.Anything).Return(nil).Once()
	appRepo.On("FindWithHistory", mock.Anything, "app-1").Return(&model.App{
		ID:     "app-1",
		Name:   "My App",
		Slug:   "my-app",
		Status: model.AppStatusBuilding,
		Updates: []model.Update{
			{ID: "u1", AppID: "app-1", Progress: 40},
		},
		Deployments: []model.Deployment{
			{ID: "d1", AppID: "app-1", Environment: "production"},
		},
	}, nil)

	uc := newPublicUseCase(shareRepo, appRepo, new(MockFeedbackRepository), new(MockClientTaskRepository))

	view, err := uc.GetAppView(context.Background(), testCode)
	require.NoError(t, err)
	assert.Equal(t, "My App", view.App.Name)
	assert.Equal(t, int64(1), view.App.Count.Updates)
	assert.Equal(t, int64(1), view.App.Count.Deployments)
	assert.True(t, view.Permissions.View)
	shareRepo.AssertExpectations(t)
}

func TestGetAppView_TouchFailureDoesNotBlockRead(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	appRepo := new(MockAppRepository)

	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).
		Return(activeLink(model.Permissions{View: true}), nil)
	shareRepo.On("TouchAccess", mock.Anything, testCode, mock.Anything).
		Return(errors.New("deadlock"))
	appRepo.On("FindWithHistory", mock.Anything, "app-1").
		Return(&model.App{ID: "app-1", Name: "My App"}, nil)

	uc := newPublicUseCase(shareRepo, appRepo, new(MockFeedbackRepository), new(MockClientTaskRepository))

	view, err := uc.GetAppView(context.Background(), testCode)
	require.NoError(t, err)
	assert.Equal(t, "My App", view.App.Name)
}

func TestGetAppView_OrphanedLinkIsNotFound(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	appRepo := new(MockAppRepository)

	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).
		Return(activeLink(model.Permissions{View: true}), nil)
	shareRepo.On("TouchAccess", mock.Anything, testCode, mock.Anything).Return(nil)
	appRepo.On("FindWithHistory", mock.Anything, "app-1").Return(nil, nil)

	uc := newPublicUseCase(shareRepo, appRepo, new(MockFeedbackRepository), new(MockClientTaskRepository))

	_, err := uc.GetAppView(context.Background(), testCode)
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}

func TestPostFeedback_RequiresCommentFlag(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	feedbackRepo := new(MockFeedbackRepository)

	// view-only link: reading works, commenting does not.
	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).
		Return(activeLink(model.Permissions{View: true}), nil)

	uc := newPublicUseCase(shareRepo, new(MockAppRepository), feedbackRepo, new(MockClientTaskRepository))

	_, err := uc.PostFeedback(context.Background(), testCode, dto.CreateFeedbackRequest{Message: "nice"})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	feedbackRepo.AssertNotCalled(t, "Create")
}

func TestPostFeedback_Succeeds(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	feedbackRepo := new(MockFeedbackRepository)

	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).
		Return(activeLink(model.Permissions{View: true, Comment: true}), nil)
	feedbackRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Feedback) bool {
		return f.ShareCode == testCode && f.Message == "looks great"
	})).Return(nil)

	uc := newPublicUseCase(shareRepo, new(MockAppRepository), feedbackRepo, new(MockClientTaskRepository))

	resp, err := uc.PostFeedback(context.Background(), testCode, dto.CreateFeedbackRequest{Message: "looks great"})
	require.NoError(t, err)
	assert.Equal(t, "looks great", resp.Message)
	assert.Equal(t, "My App", resp.AppName)
	// Feedback reads do not count as accesses.
	shareRepo.AssertNotCalled(t, "TouchAccess")
}

func TestPostTask_RequiresCreateTasksFlag(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	taskRepo := new(MockClientTaskRepository)

	// Commenting alone does not grant task creation.
	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).
		Return(activeLink(model.Permissions{View: true, Comment: true}), nil)

	uc := newPublicUseCase(shareRepo, new(MockAppRepository), new(MockFeedbackRepository), taskRepo)

	_, err := uc.PostTask(context.Background(), testCode, dto.CreateTaskRequest{Title: "Fix", Description: "Broken"})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	taskRepo.AssertNotCalled(t, "Create")
}

func TestPostTask_CreatesPending(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	taskRepo := new(MockClientTaskRepository)

	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).
		Return(activeLink(model.Permissions{View: true, Comment: true, CreateTasks: true}), nil)
	taskRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *model.ClientTask) bool {
		return task.Status == model.TaskStatusPending && task.ShareCode == testCode
	})).Return(nil)

	uc := newPublicUseCase(shareRepo, new(MockAppRepository), new(MockFeedbackRepository), taskRepo)

	resp, err := uc.PostTask(context.Background(), testCode, dto.CreateTaskRequest{
		Title:       "Add dark mode",
		Description: "The dashboard is blinding at night",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, resp.Status)
	taskRepo.AssertExpectations(t)
}

func TestListTasks_RequiresViewFlag(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)
	taskRepo := new(MockClientTaskRepository)

	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).
		Return(activeLink(model.Permissions{CreateTasks: true}), nil)

	uc := newPublicUseCase(shareRepo, new(MockAppRepository), new(MockFeedbackRepository), taskRepo)

	_, err := uc.ListTasks(context.Background(), testCode)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestListFeedback_RequiresCommentFlag(t *testing.T) {
	shareRepo := new(MockShareLinkRepository)

	shareRepo.On("FindActive", mock.Anything, testCode, mock.Anything).
		Return(activeLink(model.Permissions{View: true}), nil)

	uc := newPublicUseCase(shareRepo, new(MockAppRepository), new(MockFeedbackRepository), new(MockClientTaskRepository))

	_, err := uc.ListFeedback(context.Background(), testCode)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}
