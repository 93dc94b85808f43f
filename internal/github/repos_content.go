package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

// ListDirectory returns the entries of a directory. When the contents API
// returns a single file instead of a listing, it is normalized to a
// one-element slice so callers always iterate.
func (c *client) ListDirectory(ctx context.Context, path string) ([]*gh.RepositoryContent, error) {
	opts := &gh.RepositoryContentGetOptions{}
	file, dir, _, err := c.repositories.GetContents(ctx, c.owner, c.repo, path, opts)
	if err != nil {
		return nil, err
	}
	if dir == nil && file != nil {
		return []*gh.RepositoryContent{file}, nil
	}
	return dir, nil
}
