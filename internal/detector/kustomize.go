package detector

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/neboman11/service-update-bot/models"
)

// databases holds stateful infra charts that must never be auto-upgraded
const excludedNamespace = "databases"

// FindChartReleases runs the kustomize check over all scanned
// kustomization.yaml files and returns the update records.
func (d *Detector) FindChartReleases(ctx context.Context, files []models.TrackedFile) []models.Update {
	results := make([]Result, 0, len(files))
	for _, file := range files {
		results = append(results, d.DetectKustomize(ctx, file))
	}
	return collect(results)
}

// DetectKustomize checks the embedded Helm chart of one kustomization.yaml
// against its chart repository.
func (d *Detector) DetectKustomize(ctx context.Context, file models.TrackedFile) Result {
	var doc models.Kustomization
	if err := yaml.Unmarshal(file.Content, &doc); err != nil {
		log.WithField("path", file.Path).WithError(err).Warn("Unable to load yaml contents of file")
		d.sendNotification(ctx, fmt.Sprintf("Yaml parsing failed for %s", file.Path))
		return failed(err)
	}

	if len(doc.HelmCharts) == 0 {
		return skipped("no helm chart reference")
	}

	chart := &doc.HelmCharts[0]
	if chart.Namespace == excludedNamespace {
		return skipped("namespace is excluded from automatic upgrades")
	}

	latest, err := d.charts.LatestVersion(ctx, chart.Repo, chart.Name)
	if err != nil {
		message := fmt.Sprintf("Failed to pull chart index from %s for %s. Error: %v", chart.Repo, chart.ReleaseName, err)
		log.Error(message)
		d.sendNotification(ctx, message)
		return failed(err)
	}

	if latest == chart.Version {
		return skipped("chart version is current")
	}

	original := chart.Version
	chart.Version = latest
	return updated(&models.ChartRelease{
		Document:        &doc,
		Path:            file.Path,
		SHA:             file.SHA,
		OriginalVersion: original,
		NewVersion:      latest,
		ReleaseName:     chart.ReleaseName,
	})
}

func (d *Detector) sendNotification(ctx context.Context, message string) {
	if err := d.notifier.Send(ctx, message); err != nil {
		log.WithError(err).Warn("Failed to send notification")
	}
}
