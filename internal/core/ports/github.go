package ports

import "context"

// GithubRepo is the subset of repository metadata exposed on the profile page.
type GithubRepo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
}

// GithubGateway lists a user's most recent public repositories. An unknown
// username fails with domain.ErrUserNotFound.
type GithubGateway interface {
	Repos(ctx context.Context, username string) ([]GithubRepo, error)
}
