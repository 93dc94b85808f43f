package github

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	github "github.com/neboman11/service-update-bot/internal/github/mocks"
)

func TestGetBranch(t *testing.T) {
	ctx := context.Background()
	refsSvc := github.NewMockReferencesAdapter(t)

	ref := &gh.Reference{
		Ref:    gh.Ptr("refs/heads/master"),
		Object: &gh.GitObject{SHA: gh.Ptr("tip-sha")},
	}

	refsSvc.
		EXPECT().
		GetRef(mock.Anything, "neboman11", "argocd-definitions", "refs/heads/master").
		Once().
		Return(ref, &gh.Response{}, nil)

	c := &client{owner: "neboman11", repo: "argocd-definitions", references: refsSvc}

	got, err := c.GetBranch(ctx, "master")

	require.NoError(t, err)
	assert.Equal(t, "tip-sha", got.GetObject().GetSHA())
}

func TestCreateBranch(t *testing.T) {
	ctx := context.Background()
	refsSvc := github.NewMockReferencesAdapter(t)

	expected := gh.CreateRef{
		Ref: "refs/heads/service_update/2026-08-30",
		SHA: "base-sha",
	}

	refsSvc.
		EXPECT().
		CreateRef(mock.Anything, "neboman11", "argocd-definitions", expected).
		Once().
		Return(&gh.Reference{}, &gh.Response{}, nil)

	c := &client{owner: "neboman11", repo: "argocd-definitions", references: refsSvc}

	err := c.CreateBranch(ctx, "service_update/2026-08-30", "base-sha")

	assert.NoError(t, err)
}

func TestGetDefaultBranch(t *testing.T) {
	ctx := context.Background()
	reposSvc := github.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		Get(mock.Anything, "neboman11", "argocd-definitions").
		Once().
		Return(&gh.Repository{DefaultBranch: gh.Ptr("master")}, &gh.Response{}, nil)

	c := &client{owner: "neboman11", repo: "argocd-definitions", repositories: reposSvc}

	branch, err := c.GetDefaultBranch(ctx)

	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestGetDefaultBranch_Error(t *testing.T) {
	ctx := context.Background()
	reposSvc := github.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		Get(mock.Anything, "neboman11", "argocd-definitions").
		Once().
		Return(nil, nil, errors.New("unauthorized"))

	c := &client{owner: "neboman11", repo: "argocd-definitions", repositories: reposSvc}

	_, err := c.GetDefaultBranch(ctx)

	assert.Error(t, err)
}
