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

func TestCreatePullRequest(t *testing.T) {
	ctx := context.Background()
	prSvc := github.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		Create(mock.Anything, "neboman11", "argocd-definitions", mock.Anything).
		Run(func(_ context.Context, _, _ string, pull *gh.NewPullRequest) {
			assert.Equal(t, "Automatic Helm chart version and image tag bump", pull.GetTitle())
			assert.Equal(t, "service_update/2026-08-30", pull.GetHead())
			assert.Equal(t, "master", pull.GetBase())
		}).
		Once().
		Return(&gh.PullRequest{Number: gh.Ptr(42)}, &gh.Response{}, nil)

	c := &client{owner: "neboman11", repo: "argocd-definitions", pullRequests: prSvc}

	pr, err := c.CreatePullRequest(ctx, "Automatic Helm chart version and image tag bump", "",
		"service_update/2026-08-30", "master")

	require.NoError(t, err)
	assert.Equal(t, 42, pr.GetNumber())
}

func TestMergePullRequest(t *testing.T) {
	ctx := context.Background()
	prSvc := github.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		Merge(mock.Anything, "neboman11", "argocd-definitions", 42, "", mock.Anything).
		Once().
		Return(&gh.PullRequestMergeResult{Merged: gh.Ptr(true)}, &gh.Response{}, nil)

	c := &client{owner: "neboman11", repo: "argocd-definitions", pullRequests: prSvc}

	err := c.MergePullRequest(ctx, 42)

	assert.NoError(t, err)
}

func TestMergePullRequest_Error(t *testing.T) {
	ctx := context.Background()
	prSvc := github.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		Merge(mock.Anything, "neboman11", "argocd-definitions", 7, "", mock.Anything).
		Once().
		Return(nil, nil, errors.New("merge conflict"))

	c := &client{owner: "neboman11", repo: "argocd-definitions", pullRequests: prSvc}

	err := c.MergePullRequest(ctx, 7)

	assert.Error(t, err)
}
