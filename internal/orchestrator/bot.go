package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/neboman11/service-update-bot/internal/policy"
	"github.com/neboman11/service-update-bot/internal/reconciler"
	"github.com/neboman11/service-update-bot/internal/scanner"
	"github.com/neboman11/service-update-bot/models"
)

type RepositoryScanner interface {
	Scan(ctx context.Context) (*scanner.Result, error)
}

type UpdateDetector interface {
	FindChartReleases(ctx context.Context, files []models.TrackedFile) []models.Update
	FindDependencyUpdates(ctx context.Context, files []models.TrackedFile) []models.Update
	FindImageUpdates(ctx context.Context, files []models.TrackedFile) []models.Update
}

type UpdateReconciler interface {
	Apply(ctx context.Context, branch string, group reconciler.Group) error
}

// UpdateBot is the run loop: scan the definitions repository, detect
// updates, split them by risk and reconcile each group.
type UpdateBot struct {
	scanner    RepositoryScanner
	detector   UpdateDetector
	reconciler UpdateReconciler
}

func NewUpdateBot(scanner RepositoryScanner, detector UpdateDetector, reconciler UpdateReconciler) *UpdateBot {
	return &UpdateBot{
		scanner:    scanner,
		detector:   detector,
		reconciler: reconciler,
	}
}

// BranchName derives the per-day working branch. The date key doubles as a
// soft guard against duplicate branches from reruns on the same day.
func BranchName(now time.Time) string {
	return "service_update/" + now.Format("2006-01-02")
}

func (b *UpdateBot) Run(ctx context.Context) error {
	log.Info("Finding kustomize, chart and deployment files in repo")
	scan, err := b.scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scanning repository: %w", err)
	}
	if scan.Empty() {
		log.Info("Found no charts or images to update")
		return nil
	}

	log.Info("Checking for updates")
	helmUpdates := b.detector.FindChartReleases(ctx, scan.Kustomize)
	dependencyUpdates := b.detector.FindDependencyUpdates(ctx, scan.Charts)
	imageUpdates := b.detector.FindImageUpdates(ctx, scan.Deployments)

	if len(helmUpdates) == 0 && len(dependencyUpdates) == 0 && len(imageUpdates) == 0 {
		log.Info("Found no charts or images to update")
		return nil
	}

	branch := BranchName(time.Now())

	categories := []struct {
		category models.FileCategory
		updates  []models.Update
	}{
		{models.CategoryKustomize, helmUpdates},
		{models.CategoryChart, dependencyUpdates},
		{models.CategoryDeployment, imageUpdates},
	}

	var errs []error
	for _, c := range categories {
		safe, risky := policy.Partition(c.updates)
		for _, group := range []reconciler.Group{
			{Category: c.category, Safe: true, Updates: safe},
			{Category: c.category, Safe: false, Updates: risky},
		} {
			if err := b.reconciler.Apply(ctx, branch, group); err != nil {
				log.WithField("category", c.category).WithError(err).Error("Failed to apply update group")
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}
