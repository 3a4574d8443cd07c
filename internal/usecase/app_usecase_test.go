package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "My App", "my-app"},
		{"punctuation stripped", "Bob's Café!", "bobs-caf"},
		{"whitespace collapsed", "  A   B  ", "a-b"},
		{"dashes collapsed", "a -- b", "a-b"},
		{"already clean", "buildlog", "buildlog"},
		{"empty falls back", "", "app"},
		{"only symbols falls back", "!!!", "app"},
		{"long name truncated", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestAppCreate_PicksFreeSlugSuffix(t *testing.T) {
	appRepo := new(MockAppRepository)
	appRepo.On("FindBySlug", mock.Anything, "my-app").Return(&model.App{ID: "other"}, nil)
	appRepo.On("FindBySlug", mock.Anything, "my-app-1").Return(nil, nil)

	var created *model.App
	appRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.App")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.App)
		}).
		Return(nil)

	uc := NewAppUseCase(appRepo, new(MockUpdateRepository), new(MockDeploymentRepository), zap.NewNop())

	app, err := uc.Create(context.Background(), "owner-1", dto.CreateAppRequest{Name: "My App"})
	require.NoError(t, err)
	assert.Equal(t, "my-app-1", app.Slug)
	assert.Equal(t, model.AppStatusPlanning, created.Status)
	assert.Equal(t, "owner-1", created.OwnerID)
}

func TestAppUpdate_OnlyNonNilFields(t *testing.T) {
	appRepo := new(MockAppRepository)
	existing := &model.App{ID: "app-1", Name: "Old", Slug: "old", OwnerID: "owner-1", Status: model.AppStatusIdea}
	appRepo.On("FindBySlugForOwner", mock.Anything, "old", "owner-1").Return(existing, nil)
	appRepo.On("Save", mock.Anything, existing).Return(nil)

	uc := NewAppUseCase(appRepo, new(MockUpdateRepository), new(MockDeploymentRepository), zap.NewNop())

	status := model.AppStatusLive
	app, err := uc.Update(context.Background(), "owner-1", "old", dto.UpdateAppRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.AppStatusLive, app.Status)
	assert.Equal(t, "Old", app.Name)
}

func TestStats_RollsUpLatestUpdate(t *testing.T) {
	appRepo := new(MockAppRepository)
	blockers := "waiting on DNS"
	now := time.Now()
	appRepo.On("ListWithUpdates", mock.Anything, "owner-1").Return([]model.App{
		{
			ID:   "app-1",
			Name: "My App",
			Slug: "my-app",
			Updates: []model.Update{
				{ID: "u2", Progress: 70, Date: now, Blockers: &blockers},
				{ID: "u1", Progress: 40, Date: now.Add(-24 * time.Hour)},
			},
		},
		{ID: "app-2", Name: "Idle", Slug: "idle"},
	}, nil)

	uc := NewAppUseCase(appRepo, new(MockUpdateRepository), new(MockDeploymentRepository), zap.NewNop())

	stats, err := uc.Stats(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, 70, stats[0].CompletionPercentage)
	assert.Equal(t, 1, stats[0].BlockerCount)
	assert.Equal(t, 2, stats[0].UpdateCount)
	require.NotNil(t, stats[0].LastUpdateDate)

	assert.Equal(t, 0, stats[1].CompletionPercentage)
	assert.Nil(t, stats[1].LastUpdateDate)
}
