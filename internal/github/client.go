package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v80/github"
)

// Client is the narrow slice of the GitHub API the update bot needs against
// its single target repository.
type Client interface {
	ListDirectory(ctx context.Context, path string) ([]*gh.RepositoryContent, error)
	GetFileContent(ctx context.Context, path, ref string) (string, string, error)
	GetDefaultBranch(ctx context.Context) (string, error)
	GetBranch(ctx context.Context, branch string) (*gh.Reference, error)
	CreateBranch(ctx context.Context, branch, baseSHA string) error
	UpdateFile(ctx context.Context, path, branch, message, content, sha string) error
	CreatePullRequest(ctx context.Context, title, body, head, base string) (*gh.PullRequest, error)
	MergePullRequest(ctx context.Context, number int) error
}

// RepositoriesAdapter mirrors the go-github Repositories service methods in use.
type RepositoriesAdapter interface {
	Get(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
	GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	UpdateFile(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentFileOptions) (*gh.RepositoryContentResponse, *gh.Response, error)
}

// ReferencesAdapter mirrors the go-github Git service methods in use.
type ReferencesAdapter interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*gh.Reference, *gh.Response, error)
	CreateRef(ctx context.Context, owner, repo string, ref gh.CreateRef) (*gh.Reference, *gh.Response, error)
}

// PullRequestsAdapter mirrors the go-github PullRequests service methods in use.
type PullRequestsAdapter interface {
	Create(ctx context.Context, owner, repo string, pull *gh.NewPullRequest) (*gh.PullRequest, *gh.Response, error)
	Merge(ctx context.Context, owner, repo string, number int, commitMessage string, opts *gh.PullRequestOptions) (*gh.PullRequestMergeResult, *gh.Response, error)
}

type client struct {
	owner        string
	repo         string
	repositories RepositoriesAdapter
	references   ReferencesAdapter
	pullRequests PullRequestsAdapter
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// New builds a Client bound to a single owner/name repository.
func New(token, repository string) (Client, error) {
	owner, repo, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("repository must be owner/name, got %q", repository)
	}

	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	ghClient := gh.NewClient(httpClient)
	return &client{
		owner:        owner,
		repo:         repo,
		repositories: ghClient.Repositories,
		references:   ghClient.Git,
		pullRequests: ghClient.PullRequests,
	}, nil
}
