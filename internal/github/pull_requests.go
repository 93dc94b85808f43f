package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) CreatePullRequest(ctx context.Context, title, body, head, base string) (*gh.PullRequest, error) {
	pr := &gh.NewPullRequest{
		Title: gh.Ptr(title),
		Body:  gh.Ptr(body),
		Head:  gh.Ptr(head),
		Base:  gh.Ptr(base),
	}
	created, _, err := c.pullRequests.Create(ctx, c.owner, c.repo, pr)
	return created, err
}

func (c *client) MergePullRequest(ctx context.Context, number int) error {
	_, _, err := c.pullRequests.Merge(ctx, c.owner, c.repo, number, "", nil)
	return err
}
