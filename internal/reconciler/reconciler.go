package reconciler

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/neboman11/service-update-bot/internal/github"
	"github.com/neboman11/service-update-bot/internal/notify"
	"github.com/neboman11/service-update-bot/models"
)

const pullRequestTitle = "Automatic Helm chart version and image tag bump"

// Group is one batch of updates sharing a source category and a policy
// class. Safe groups are merged immediately; risky ones stay open for review.
type Group struct {
	Category models.FileCategory
	Safe     bool
	Updates  []models.Update
}

// Reconciler serializes detected updates back into the repository through a
// branch and pull request.
type Reconciler struct {
	gh       github.Client
	notifier notify.Notifier
	dryRun   bool
}

func New(gh github.Client, notifier notify.Notifier, dryRun bool) *Reconciler {
	return &Reconciler{
		gh:       gh,
		notifier: notifier,
		dryRun:   dryRun,
	}
}

// Apply commits a group's updates to the given branch, opens a pull request
// and, for safe groups, merges it. In dry-run mode only the notification is
// sent. A single file's commit failure does not stop the rest of the group.
func (r *Reconciler) Apply(ctx context.Context, branch string, group Group) error {
	if len(group.Updates) == 0 {
		return nil
	}

	if !r.dryRun {
		baseBranch, err := r.ensureBranch(ctx, branch)
		if err != nil {
			return fmt.Errorf("ensuring branch %s: %w", branch, err)
		}

		log.WithFields(log.Fields{
			"category": group.Category,
			"count":    len(group.Updates),
		}).Info("Committing changes for updates")
		r.commitUpdates(ctx, branch, group.Updates)

		pr, err := r.gh.CreatePullRequest(ctx, pullRequestTitle, "", branch, baseBranch)
		if err != nil {
			return fmt.Errorf("creating pull request: %w", err)
		}

		if group.Safe {
			log.Info("Merging PR automatically for minor/patch update")
			if err := r.gh.MergePullRequest(ctx, pr.GetNumber()); err != nil {
				return fmt.Errorf("merging pull request #%d: %w", pr.GetNumber(), err)
			}
		}
	}

	r.notifyGroup(ctx, group)
	return nil
}

// ensureBranch looks the branch up before creating it, so a rerun on the
// same day reuses the existing branch. Returns the default branch name for
// use as the pull request base.
func (r *Reconciler) ensureBranch(ctx context.Context, branch string) (string, error) {
	baseBranch, err := r.gh.GetDefaultBranch(ctx)
	if err != nil {
		return "", fmt.Errorf("resolving default branch: %w", err)
	}

	if _, err := r.gh.GetBranch(ctx, branch); err == nil {
		log.WithField("branch", branch).Debug("Branch already exists")
		return baseBranch, nil
	}

	log.WithField("branch", branch).Info("Branch does not exist, creating")
	baseRef, err := r.gh.GetBranch(ctx, baseBranch)
	if err != nil {
		return "", fmt.Errorf("reading %s tip: %w", baseBranch, err)
	}
	if err := r.gh.CreateBranch(ctx, branch, baseRef.GetObject().GetSHA()); err != nil {
		return "", err
	}
	return baseBranch, nil
}

// commitUpdates writes each mutated document back to its path, using the
// scan-time blob SHA as the precondition. A mismatch fails only that file.
func (r *Reconciler) commitUpdates(ctx context.Context, branch string, updates []models.Update) {
	for _, update := range updates {
		content, err := update.MarshalDocument()
		if err != nil {
			r.reportCommitFailure(ctx, update, err)
			continue
		}
		err = r.gh.UpdateFile(ctx, update.FilePath(), branch, update.CommitMessage(), string(content), update.FileSHA())
		if err != nil {
			r.reportCommitFailure(ctx, update, err)
		}
	}
}

func (r *Reconciler) reportCommitFailure(ctx context.Context, update models.Update, err error) {
	message := fmt.Sprintf("Failed to commit update for %s: %v", update.FilePath(), err)
	log.Error(message)
	if sendErr := r.notifier.Send(ctx, message); sendErr != nil {
		log.WithError(sendErr).Warn("Failed to send notification")
	}
}

func (r *Reconciler) notifyGroup(ctx context.Context, group Group) {
	names := make([]string, 0, len(group.Updates))
	for _, update := range group.Updates {
		names = append(names, update.DisplayName())
	}

	var message string
	if group.Safe {
		message = fmt.Sprintf("Updated versions %s", strings.Join(names, ", "))
	} else {
		message = fmt.Sprintf("Created PR for major version bumps on %s", strings.Join(names, ", "))
	}
	if err := r.notifier.Send(ctx, message); err != nil {
		log.WithError(err).Warn("Failed to send notification")
	}
}
