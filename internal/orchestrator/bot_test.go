package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neboman11/service-update-bot/internal/orchestrator/mocks"
	"github.com/neboman11/service-update-bot/internal/reconciler"
	"github.com/neboman11/service-update-bot/internal/scanner"
	"github.com/neboman11/service-update-bot/models"
)

func TestBranchName(t *testing.T) {
	now := time.Date(2026, time.August, 30, 14, 5, 0, 0, time.UTC)

	assert.Equal(t, "service_update/2026-08-30", BranchName(now))
}

func TestRun_ScanErrorIsFatal(t *testing.T) {
	scan := mocks.NewMockRepositoryScanner(t)
	detect := mocks.NewMockUpdateDetector(t)
	apply := mocks.NewMockUpdateReconciler(t)

	scan.EXPECT().Scan(mock.Anything).Return(nil, errors.New("api down"))

	bot := NewUpdateBot(scan, detect, apply)
	err := bot.Run(context.Background())

	assert.Error(t, err)
	apply.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_EmptyScanSkipsDetection(t *testing.T) {
	scan := mocks.NewMockRepositoryScanner(t)
	detect := mocks.NewMockUpdateDetector(t)
	apply := mocks.NewMockUpdateReconciler(t)

	scan.EXPECT().Scan(mock.Anything).Return(&scanner.Result{}, nil)

	bot := NewUpdateBot(scan, detect, apply)
	err := bot.Run(context.Background())

	require.NoError(t, err)
	detect.AssertNotCalled(t, "FindChartReleases", mock.Anything, mock.Anything)
	apply.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_NoUpdatesReturnsEarly(t *testing.T) {
	scan := mocks.NewMockRepositoryScanner(t)
	detect := mocks.NewMockUpdateDetector(t)
	apply := mocks.NewMockUpdateReconciler(t)

	scan.EXPECT().Scan(mock.Anything).Return(&scanner.Result{
		Charts: []models.TrackedFile{{Path: "media/Chart.yaml"}},
	}, nil)
	detect.EXPECT().FindChartReleases(mock.Anything, mock.Anything).Return(nil)
	detect.EXPECT().FindDependencyUpdates(mock.Anything, mock.Anything).Return(nil)
	detect.EXPECT().FindImageUpdates(mock.Anything, mock.Anything).Return(nil)

	bot := NewUpdateBot(scan, detect, apply)
	err := bot.Run(context.Background())

	require.NoError(t, err)
	apply.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestRun_PartitionsAndAppliesPerCategory(t *testing.T) {
	scan := mocks.NewMockRepositoryScanner(t)
	detect := mocks.NewMockUpdateDetector(t)
	apply := mocks.NewMockUpdateReconciler(t)

	scanResult := &scanner.Result{
		Kustomize: []models.TrackedFile{{Path: "a/kustomization.yaml"}},
	}
	scan.EXPECT().Scan(mock.Anything).Return(scanResult, nil)

	safeChart := &models.ChartRelease{ReleaseName: "a", OriginalVersion: "1.0.0", NewVersion: "1.1.0"}
	riskyChart := &models.ChartRelease{ReleaseName: "b", OriginalVersion: "1.0.0", NewVersion: "2.0.0"}
	detect.EXPECT().FindChartReleases(mock.Anything, scanResult.Kustomize).
		Return([]models.Update{safeChart, riskyChart})
	detect.EXPECT().FindDependencyUpdates(mock.Anything, mock.Anything).Return(nil)
	detect.EXPECT().FindImageUpdates(mock.Anything, mock.Anything).Return(nil)

	branch := BranchName(time.Now())
	var groups []reconciler.Group
	apply.EXPECT().Apply(mock.Anything, branch, mock.Anything).
		Run(func(_ context.Context, _ string, group reconciler.Group) {
			groups = append(groups, group)
		}).
		Return(nil).
		Times(6)

	bot := NewUpdateBot(scan, detect, apply)
	err := bot.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, groups, 6)

	assert.Equal(t, models.CategoryKustomize, groups[0].Category)
	assert.True(t, groups[0].Safe)
	assert.Equal(t, []models.Update{safeChart}, groups[0].Updates)

	assert.Equal(t, models.CategoryKustomize, groups[1].Category)
	assert.False(t, groups[1].Safe)
	assert.Equal(t, []models.Update{riskyChart}, groups[1].Updates)

	// The empty chart and deployment groups still flow through Apply,
	// which treats them as no-ops.
	assert.Empty(t, groups[2].Updates)
	assert.Empty(t, groups[5].Updates)
}

func TestRun_ApplyErrorsAreJoinedNotFatal(t *testing.T) {
	scan := mocks.NewMockRepositoryScanner(t)
	detect := mocks.NewMockUpdateDetector(t)
	apply := mocks.NewMockUpdateReconciler(t)

	scan.EXPECT().Scan(mock.Anything).Return(&scanner.Result{
		Kustomize: []models.TrackedFile{{Path: "a/kustomization.yaml"}},
	}, nil)
	detect.EXPECT().FindChartReleases(mock.Anything, mock.Anything).
		Return([]models.Update{&models.ChartRelease{ReleaseName: "a", OriginalVersion: "1.0.0", NewVersion: "1.1.0"}})
	detect.EXPECT().FindDependencyUpdates(mock.Anything, mock.Anything).Return(nil)
	detect.EXPECT().FindImageUpdates(mock.Anything, mock.Anything).Return(nil)

	applyErr := errors.New("pull request failed")
	calls := 0
	apply.EXPECT().Apply(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, reconciler.Group) error {
			calls++
			if calls == 1 {
				return applyErr
			}
			return nil
		}).
		Times(6)

	bot := NewUpdateBot(scan, detect, apply)
	err := bot.Run(context.Background())

	assert.ErrorIs(t, err, applyErr)
	assert.Equal(t, 6, calls)
}
