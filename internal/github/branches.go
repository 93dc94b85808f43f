package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetBranch(ctx context.Context, branch string) (*gh.Reference, error) {
	ref, _, err := c.references.GetRef(ctx, c.owner, c.repo, "refs/heads/"+branch)
	return ref, err
}

func (c *client) CreateBranch(ctx context.Context, branch, baseSHA string) error {
	ref := gh.CreateRef{
		Ref: "refs/heads/" + branch,
		SHA: baseSHA,
	}
	_, _, err := c.references.CreateRef(ctx, c.owner, c.repo, ref)
	return err
}

func (c *client) GetDefaultBranch(ctx context.Context) (string, error) {
	repo, _, err := c.repositories.Get(ctx, c.owner, c.repo)
	if err != nil {
		return "", err
	}
	return repo.GetDefaultBranch(), nil
}
