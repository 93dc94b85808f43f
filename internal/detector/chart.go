package detector

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/neboman11/service-update-bot/models"
)

// FindDependencyUpdates runs the Chart.yaml dependency check over all
// scanned chart files.
func (d *Detector) FindDependencyUpdates(ctx context.Context, files []models.TrackedFile) []models.Update {
	results := make([]Result, 0, len(files))
	for _, file := range files {
		results = append(results, d.DetectChartDependencies(ctx, file))
	}
	return collect(results)
}

// DetectChartDependencies checks the dependency list of one Chart.yaml.
// Only the first dependency with a newer version is reported per run; the
// rest are picked up on subsequent runs once that bump lands.
func (d *Detector) DetectChartDependencies(ctx context.Context, file models.TrackedFile) Result {
	var doc models.ChartFile
	if err := yaml.Unmarshal(file.Content, &doc); err != nil {
		log.WithField("path", file.Path).WithError(err).Warn("Unable to load yaml contents of file")
		d.sendNotification(ctx, fmt.Sprintf("Yaml parsing failed for %s", file.Path))
		return failed(err)
	}

	for i := range doc.Dependencies {
		dependency := &doc.Dependencies[i]

		latest, err := d.charts.LatestVersion(ctx, dependency.Repository, dependency.Name)
		if err != nil {
			message := fmt.Sprintf("Failed to pull chart index from %s for %s. Error: %v", dependency.Repository, dependency.Name, err)
			log.Error(message)
			d.sendNotification(ctx, message)
			continue
		}

		if latest == dependency.Version {
			continue
		}

		original := dependency.Version
		dependency.Version = latest
		return updated(&models.ChartDependencyUpdate{
			Document:        &doc,
			Path:            file.Path,
			SHA:             file.SHA,
			OriginalVersion: original,
			NewVersion:      latest,
			ChartName:       dependency.Name,
		})
	}

	return skipped("no dependency updates")
}
