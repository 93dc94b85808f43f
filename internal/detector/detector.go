package detector

import (
	"context"

	"github.com/neboman11/service-update-bot/internal/notify"
	"github.com/neboman11/service-update-bot/models"
)

// ChartVersionResolver answers "what is the latest stable version of this
// chart in this repository".
type ChartVersionResolver interface {
	LatestVersion(ctx context.Context, repoURL, chart string) (string, error)
}

// ImageTagResolver answers "what is the latest version-like tag for this
// image".
type ImageTagResolver interface {
	LatestTag(ctx context.Context, ref models.ImageReference) (string, error)
}

type Outcome int

const (
	// OutcomeUpdated carries an update record for the file.
	OutcomeUpdated Outcome = iota
	// OutcomeSkipped means the file needs no change (or is excluded).
	OutcomeSkipped
	// OutcomeFailed means detection broke for this file; the run continues.
	OutcomeFailed
)

// Result is the per-file detection outcome. Errors never escape a file:
// they are folded into a Failed result here.
type Result struct {
	Outcome Outcome
	Update  models.Update
	Reason  string
	Err     error
}

func updated(u models.Update) Result {
	return Result{Outcome: OutcomeUpdated, Update: u}
}

func skipped(reason string) Result {
	return Result{Outcome: OutcomeSkipped, Reason: reason}
}

func failed(err error) Result {
	return Result{Outcome: OutcomeFailed, Err: err}
}

// Detector runs the per-category update checks over scanned files.
type Detector struct {
	charts   ChartVersionResolver
	registry ImageTagResolver
	notifier notify.Notifier
}

func New(charts ChartVersionResolver, registry ImageTagResolver, notifier notify.Notifier) *Detector {
	return &Detector{
		charts:   charts,
		registry: registry,
		notifier: notifier,
	}
}

func collect(results []Result) []models.Update {
	var updates []models.Update
	for _, result := range results {
		if result.Outcome == OutcomeUpdated {
			updates = append(updates, result.Update)
		}
	}
	return updates
}
