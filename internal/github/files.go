package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetFileContent(ctx context.Context, path, ref string) (string, string, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	content, _, _, err := c.repositories.GetContents(ctx, c.owner, c.repo, path, opts)
	if err != nil {
		return "", "", err
	}
	decoded, err := content.GetContent()
	if err != nil {
		return "", "", err
	}
	return decoded, content.GetSHA(), nil
}

// UpdateFile commits new content for path on branch. The sha is the blob the
// caller last read; GitHub rejects the write if the file changed since.
func (c *client) UpdateFile(ctx context.Context, path, branch, message, content, sha string) error {
	opts := &gh.RepositoryContentFileOptions{
		Message: gh.Ptr(message),
		Content: []byte(content),
		Branch:  gh.Ptr(branch),
		SHA:     gh.Ptr(sha),
	}
	_, _, err := c.repositories.UpdateFile(ctx, c.owner, c.repo, path, opts)
	return err
}
