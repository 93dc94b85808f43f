package detector

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/neboman11/service-update-bot/internal/registry"
	"github.com/neboman11/service-update-bot/models"
)

// FindImageUpdates runs the container image check over all scanned
// deployment manifests.
func (d *Detector) FindImageUpdates(ctx context.Context, files []models.TrackedFile) []models.Update {
	results := make([]Result, 0, len(files))
	for _, file := range files {
		results = append(results, d.DetectDeployment(ctx, file))
	}
	return collect(results)
}

// DetectDeployment checks the container images of one deployment manifest.
// A failed tag resolution aborts the whole file so a manifest is never
// partially rewritten. As with Chart.yaml dependencies, only the first
// container with a newer tag is reported per run.
func (d *Detector) DetectDeployment(ctx context.Context, file models.TrackedFile) Result {
	var doc models.Deployment
	if err := yaml.Unmarshal(file.Content, &doc); err != nil {
		log.WithField("path", file.Path).WithError(err).Warn("Unable to load yaml contents of file")
		d.sendNotification(ctx, fmt.Sprintf("Yaml parsing failed for %s", file.Path))
		return failed(err)
	}

	containers := doc.Spec.Template.Spec.Containers
	for i := range containers {
		container := &containers[i]
		ref := models.ParseImageReference(container.Image)

		latest, err := d.registry.LatestTag(ctx, ref)
		if err != nil {
			if errors.Is(err, registry.ErrNoMatchingTags) {
				return skipped(fmt.Sprintf("no usable tags for %s", ref.Name))
			}
			message := fmt.Sprintf("Error pulling latest image tag for %s: %v", ref.Name, err)
			log.Error(message)
			d.sendNotification(ctx, message)
			return failed(err)
		}

		if latest == ref.Tag {
			continue
		}

		log.WithFields(log.Fields{
			"image": ref.Name,
			"from":  ref.Tag,
			"to":    latest,
		}).Info("Found new tag for image")
		container.Image = ref.WithTag(latest)
		return updated(&models.ImageUpdate{
			Document:   &doc,
			Path:       file.Path,
			SHA:        file.SHA,
			CurrentTag: ref.Tag,
			NewTag:     latest,
			ImageName:  ref.Name,
		})
	}

	return skipped("all image tags are current")
}
