package dto

// GitHubRepo is the repository metadata subset surfaced in insights.
type GitHubRepo struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Description     *string `json:"description"`
	HTMLURL         string  `json:"html_url"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	Language        *string `json:"language"`
	OpenIssuesCount int     `json:"open_issues_count"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	PushedAt        string  `json:"pushed_at"`
	DefaultBranch   string  `json:"default_branch"`
	Private         bool    `json:"private"`
}

// GitHubCommit is a single commit entry.
type GitHubCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Author struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Date  string `json:"date"`
		} `json:"author"`
		Message string `json:"message"`
	} `json:"commit"`
	HTMLURL string `json:"html_url"`
}

// GitHubIssue is a single open issue entry.
type GitHubIssue struct {
	ID        int64  `json:"id"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	State     string `json:"state"`
	HTMLURL   string `json:"html_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	User      struct {
		Login   string `json:"login"`
		HTMLURL string `json:"html_url"`
	} `json:"user"`
	Labels []struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
	} `json:"labels"`
}

// RepoInsights aggregates cached GitHub data for one repository.
type RepoInsights struct {
	Repo           *GitHubRepo    `json:"repo"`
	RecentCommits  []GitHubCommit `json:"recentCommits"`
	OpenIssues     []GitHubIssue  `json:"openIssues"`
	LastCommitDate *string        `json:"lastCommitDate"`
	CommitCount    int            `json:"commitCount"`
	Error          string         `json:"error,omitempty"`
}
