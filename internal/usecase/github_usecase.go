package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

var githubRepoPattern = regexp.MustCompile(`^https?://(?:www\.)?github\.com/([^/]+)/([^/?#]+?)/?$`)

// ExtractRepoFromURL parses owner and repo out of a GitHub repository URL.
func ExtractRepoFromURL(githubURL string) (owner, repo string, ok bool) {
	m := githubRepoPattern.FindStringSubmatch(githubURL)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// GitHubClient fetches repository data from the GitHub REST API.
type GitHubClient interface {
	FetchRepo(ctx context.Context, owner, repo string) (*dto.GitHubRepo, error)
	FetchRecentCommits(ctx context.Context, owner, repo string, limit int) ([]dto.GitHubCommit, error)
	FetchOpenIssues(ctx context.Context, owner, repo string, limit int) ([]dto.GitHubIssue, error)
}

// GitHubUseCase is a read-through cache over the GitHub API. Entries live
// in the injected cache store under an owner/repo key; concurrent refreshes
// of the same repository collapse into a single upstream call.
type GitHubUseCase struct {
	client GitHubClient
	cache  repository.CacheRepository
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

// NewGitHubUseCase creates the GitHub insights usecase.
func NewGitHubUseCase(client GitHubClient, cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *GitHubUseCase {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &GitHubUseCase{
		client: client,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// GetInsights returns repository insights for a GitHub URL. A URL that is
// not a GitHub repository yields an empty insights payload, not an error.
func (uc *GitHubUseCase) GetInsights(ctx context.Context, githubURL string) (*dto.RepoInsights, error) {
	owner, repo, ok := ExtractRepoFromURL(githubURL)
	if !ok {
		return &dto.RepoInsights{
			RecentCommits: []dto.GitHubCommit{},
			OpenIssues:    []dto.GitHubIssue{},
		}, nil
	}

	cacheKey := fmt.Sprintf("github:insights:%s/%s", owner, repo)

	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
		var insights dto.RepoInsights
		if err := json.Unmarshal([]byte(cached), &insights); err == nil {
			return &insights, nil
		}
		uc.logger.Warn("Discarding corrupt cached insights", zap.String("key", cacheKey))
	} else if !uc.cache.IsNotFound(err) {
		uc.logger.Warn("Insights cache read failed", zap.String("key", cacheKey), zap.Error(err))
	}

	result, err, _ := uc.group.Do(cacheKey, func() (interface{}, error) {
		return uc.fetch(ctx, cacheKey, owner, repo)
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.RepoInsights), nil
}

func (uc *GitHubUseCase) fetch(ctx context.Context, cacheKey, owner, repo string) (*dto.RepoInsights, error) {
	insights := &dto.RepoInsights{
		RecentCommits: []dto.GitHubCommit{},
		OpenIssues:    []dto.GitHubIssue{},
	}

	repoData, err := uc.client.FetchRepo(ctx, owner, repo)
	if err != nil {
		uc.logger.Warn("GitHub repo fetch failed",
			zap.String("repo", owner+"/"+repo),
			zap.Error(err),
		)
		insights.Error = "failed to fetch repository data"
		return insights, nil
	}
	insights.Repo = repoData

	if commits, err := uc.client.FetchRecentCommits(ctx, owner, repo, 10); err == nil {
		insights.RecentCommits = commits
		insights.CommitCount = len(commits)
		if len(commits) > 0 {
			date := commits[0].Commit.Author.Date
			insights.LastCommitDate = &date
		}
	} else {
		uc.logger.Warn("GitHub commits fetch failed",
			zap.String("repo", owner+"/"+repo),
			zap.Error(err),
		)
	}

	if issues, err := uc.client.FetchOpenIssues(ctx, owner, repo, 10); err == nil {
		insights.OpenIssues = issues
	} else {
		uc.logger.Warn("GitHub issues fetch failed",
			zap.String("repo", owner+"/"+repo),
			zap.Error(err),
		)
	}

	if encoded, err := json.Marshal(insights); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, string(encoded), uc.ttl); err != nil {
			uc.logger.Warn("Insights cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return insights, nil
}
