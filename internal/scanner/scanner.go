package scanner

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/neboman11/service-update-bot/internal/github"
	"github.com/neboman11/service-update-bot/models"
)

// overlay variants duplicate the base definitions they patch, so descending
// into them would produce redundant updates
const excludedDir = "overlays"

// Result holds the classified file snapshots of one full repository walk.
type Result struct {
	Kustomize   []models.TrackedFile
	Charts      []models.TrackedFile
	Deployments []models.TrackedFile
}

func (r *Result) Empty() bool {
	return len(r.Kustomize) == 0 && len(r.Charts) == 0 && len(r.Deployments) == 0
}

// Scanner walks the definitions repository and classifies files by name.
type Scanner struct {
	gh github.Client
}

func New(gh github.Client) *Scanner {
	return &Scanner{gh: gh}
}

// Scan recursively lists the repository tree from the root. Any listing or
// content fetch error aborts the scan; there is no partial-scan recovery.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	result := &Result{}
	if err := s.walk(ctx, "/", result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Scanner) walk(ctx context.Context, path string, result *Result) error {
	entries, err := s.gh.ListDirectory(ctx, path)
	if err != nil {
		return fmt.Errorf("listing %s: %w", path, err)
	}

	for _, entry := range entries {
		switch entry.GetType() {
		case "file":
			category, ok := classify(entry.GetName())
			if !ok {
				continue
			}
			content, sha, err := s.gh.GetFileContent(ctx, entry.GetPath(), "")
			if err != nil {
				return fmt.Errorf("reading %s: %w", entry.GetPath(), err)
			}
			tracked := models.TrackedFile{
				Path:     entry.GetPath(),
				SHA:      sha,
				Content:  []byte(content),
				Category: category,
			}
			switch category {
			case models.CategoryKustomize:
				result.Kustomize = append(result.Kustomize, tracked)
			case models.CategoryChart:
				result.Charts = append(result.Charts, tracked)
			case models.CategoryDeployment:
				result.Deployments = append(result.Deployments, tracked)
			}
		case "dir":
			if entry.GetName() == excludedDir {
				log.WithField("path", entry.GetPath()).Debug("Skipping overlay directory")
				continue
			}
			if err := s.walk(ctx, "/"+entry.GetPath(), result); err != nil {
				return err
			}
		}
	}
	return nil
}

func classify(name string) (models.FileCategory, bool) {
	switch {
	case name == "kustomization.yaml":
		return models.CategoryKustomize, true
	case name == "Chart.yaml":
		return models.CategoryChart, true
	case strings.HasSuffix(name, "deployment.yaml"):
		return models.CategoryDeployment, true
	}
	return "", false
}
