package detector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/neboman11/service-update-bot/internal/detector/mocks"
	notifymocks "github.com/neboman11/service-update-bot/internal/notify/mocks"
	"github.com/neboman11/service-update-bot/models"
)

const kustomizationYAML = `apiVersion: kustomize.config.k8s.io/v1beta1
kind: Kustomization
helmCharts:
  - name: jellyfin
    repo: https://jellyfin.github.io/jellyfin-helm
    version: 2.1.0
    releaseName: jellyfin
    namespace: media
`

func newKustomizeDetector(t *testing.T) (*Detector, *mocks.MockChartVersionResolver, *notifymocks.MockNotifier) {
	t.Helper()
	charts := mocks.NewMockChartVersionResolver(t)
	notifier := notifymocks.NewMockNotifier(t)
	return New(charts, mocks.NewMockImageTagResolver(t), notifier), charts, notifier
}

func kustomizeFile(content string) models.TrackedFile {
	return models.TrackedFile{
		Path:     "media/jellyfin/kustomization.yaml",
		SHA:      "abc123",
		Content:  []byte(content),
		Category: models.CategoryKustomize,
	}
}

func TestDetectKustomize_NewVersion(t *testing.T) {
	detector, charts, _ := newKustomizeDetector(t)

	charts.EXPECT().
		LatestVersion(mock.Anything, "https://jellyfin.github.io/jellyfin-helm", "jellyfin").
		Return("2.3.0", nil)

	result := detector.DetectKustomize(context.Background(), kustomizeFile(kustomizationYAML))

	require.Equal(t, OutcomeUpdated, result.Outcome)
	update := result.Update.(*models.ChartRelease)
	assert.Equal(t, "jellyfin", update.DisplayName())
	assert.Equal(t, "2.1.0", update.FromVersion())
	assert.Equal(t, "2.3.0", update.ToVersion())
	assert.Equal(t, "media/jellyfin/kustomization.yaml", update.FilePath())
	assert.Equal(t, "abc123", update.FileSHA())

	// The mutated document carries the new version for the commit.
	out, err := update.MarshalDocument()
	require.NoError(t, err)
	var reread models.Kustomization
	require.NoError(t, yaml.Unmarshal(out, &reread))
	assert.Equal(t, "2.3.0", reread.HelmCharts[0].Version)
}

func TestDetectKustomize_CurrentVersionSkips(t *testing.T) {
	detector, charts, _ := newKustomizeDetector(t)

	charts.EXPECT().
		LatestVersion(mock.Anything, mock.Anything, mock.Anything).
		Return("2.1.0", nil)

	result := detector.DetectKustomize(context.Background(), kustomizeFile(kustomizationYAML))

	assert.Equal(t, OutcomeSkipped, result.Outcome)
	assert.Nil(t, result.Update)
}

func TestDetectKustomize_NoHelmChartsSkips(t *testing.T) {
	detector, _, _ := newKustomizeDetector(t)

	result := detector.DetectKustomize(context.Background(), kustomizeFile("resources:\n  - deployment.yaml\n"))

	assert.Equal(t, OutcomeSkipped, result.Outcome)
}

func TestDetectKustomize_DatabasesNamespaceExcluded(t *testing.T) {
	detector, _, _ := newKustomizeDetector(t)

	content := `helmCharts:
  - name: postgresql
    repo: https://charts.bitnami.com/bitnami
    version: 13.2.0
    releaseName: postgresql
    namespace: databases
`

	result := detector.DetectKustomize(context.Background(), kustomizeFile(content))

	assert.Equal(t, OutcomeSkipped, result.Outcome)
}

func TestDetectKustomize_ParseFailureNotifies(t *testing.T) {
	detector, _, notifier := newKustomizeDetector(t)

	notifier.EXPECT().
		Send(mock.Anything, "Yaml parsing failed for media/jellyfin/kustomization.yaml").
		Return(nil)

	result := detector.DetectKustomize(context.Background(), kustomizeFile("helmCharts: [unclosed"))

	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Error(t, result.Err)
}

func TestDetectKustomize_ResolverFailureNotifies(t *testing.T) {
	detector, charts, notifier := newKustomizeDetector(t)

	charts.EXPECT().
		LatestVersion(mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("index unreachable"))
	notifier.EXPECT().
		Send(mock.Anything, "Failed to pull chart index from https://jellyfin.github.io/jellyfin-helm for jellyfin. Error: index unreachable").
		Return(nil)

	result := detector.DetectKustomize(context.Background(), kustomizeFile(kustomizationYAML))

	assert.Equal(t, OutcomeFailed, result.Outcome)
}

func TestFindChartReleases_CollectsOnlyUpdates(t *testing.T) {
	detector, charts, _ := newKustomizeDetector(t)

	charts.EXPECT().
		LatestVersion(mock.Anything, mock.Anything, mock.Anything).
		Return("2.3.0", nil).
		Once()

	files := []models.TrackedFile{
		kustomizeFile(kustomizationYAML),
		kustomizeFile("resources:\n  - deployment.yaml\n"),
	}

	updates := detector.FindChartReleases(context.Background(), files)

	require.Len(t, updates, 1)
	assert.Equal(t, "jellyfin", updates[0].DisplayName())
}
