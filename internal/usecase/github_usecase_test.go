package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/infrastructure/cache"
)

type stubGitHubClient struct {
	repoCalls int32
	repo      *dto.GitHubRepo
	err       error
}

func (s *stubGitHubClient) FetchRepo(ctx context.Context, owner, repo string) (*dto.GitHubRepo, error) {
	atomic.AddInt32(&s.repoCalls, 1)
	return s.repo, s.err
}

func (s *stubGitHubClient) FetchRecentCommits(ctx context.Context, owner, repo string, limit int) ([]dto.GitHubCommit, error) {
	return []dto.GitHubCommit{}, nil
}

func (s *stubGitHubClient) FetchOpenIssues(ctx context.Context, owner, repo string, limit int) ([]dto.GitHubIssue, error) {
	return []dto.GitHubIssue{}, nil
}

func TestExtractRepoFromURL(t *testing.T) {
	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{"https://github.com/labstack/echo", "labstack", "echo", true},
		{"https://github.com/labstack/echo/", "labstack", "echo", true},
		{"http://www.github.com/uber-go/zap", "uber-go", "zap", true},
		{"https://gitlab.com/foo/bar", "", "", false},
		{"https://github.com/onlyowner", "", "", false},
		{"not a url", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			owner, repo, ok := ExtractRepoFromURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestGetInsights_CachesSecondRead(t *testing.T) {
	client := &stubGitHubClient{repo: &dto.GitHubRepo{FullName: "labstack/echo", StargazersCount: 30000}}
	uc := NewGitHubUseCase(client, cache.NewMemoryRepository(), time.Minute, zap.NewNop())

	first, err := uc.GetInsights(context.Background(), "https://github.com/labstack/echo")
	require.NoError(t, err)
	require.NotNil(t, first.Repo)

	second, err := uc.GetInsights(context.Background(), "https://github.com/labstack/echo")
	require.NoError(t, err)
	assert.Equal(t, first.Repo.FullName, second.Repo.FullName)
	assert.Equal(t, int32(1), atomic.LoadInt32(&client.repoCalls))
}

func TestGetInsights_NonGitHubURLIsEmptyPayload(t *testing.T) {
	client := &stubGitHubClient{}
	uc := NewGitHubUseCase(client, cache.NewMemoryRepository(), time.Minute, zap.NewNop())

	insights, err := uc.GetInsights(context.Background(), "https://example.com/repo")
	require.NoError(t, err)
	assert.Nil(t, insights.Repo)
	assert.Empty(t, insights.RecentCommits)
	assert.Equal(t, int32(0), atomic.LoadInt32(&client.repoCalls))
}

func TestGetInsights_UpstreamFailureIsSoft(t *testing.T) {
	client := &stubGitHubClient{err: errors.New("rate limited")}
	uc := NewGitHubUseCase(client, cache.NewMemoryRepository(), time.Minute, zap.NewNop())

	insights, err := uc.GetInsights(context.Background(), "https://github.com/labstack/echo")
	require.NoError(t, err)
	assert.Nil(t, insights.Repo)
	assert.NotEmpty(t, insights.Error)
}
