package charts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"resty.dev/v3"

	"github.com/neboman11/service-update-bot/internal/versions"
)

var (
	// ErrChartNotFound means the repository index has no entry for the chart.
	ErrChartNotFound = errors.New("chart not found in repository index")
	// ErrNoStableVersions means every published version looked like a prerelease.
	ErrNoStableVersions = errors.New("no stable versions for chart")
)

// Resolver selects the latest stable version of a chart from its
// repository's index.yaml.
type Resolver struct {
	client *resty.Client
}

func NewResolver(client *resty.Client) *Resolver {
	return &Resolver{client: client}
}

type repositoryIndex struct {
	Entries map[string][]struct {
		Version string `yaml:"version"`
	} `yaml:"entries"`
}

// LatestVersion fetches <repoURL>/index.yaml, filters out prerelease-looking
// versions and returns the highest remainder. The prerelease filter is a
// literal substring match on dev, alpha and beta, mirroring what chart
// publishers in this setup actually use.
func (r *Resolver) LatestVersion(ctx context.Context, repoURL, chart string) (string, error) {
	if !strings.HasSuffix(repoURL, "/") {
		repoURL += "/"
	}

	resp, err := r.client.R().
		SetContext(ctx).
		Get(repoURL + "index.yaml")
	if err != nil {
		return "", fmt.Errorf("pulling chart index from %s: %w", repoURL, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("pulling chart index from %s: status %d", repoURL, resp.StatusCode())
	}

	var index repositoryIndex
	if err := yaml.Unmarshal(resp.Bytes(), &index); err != nil {
		return "", fmt.Errorf("parsing chart index from %s: %w", repoURL, err)
	}

	entries, ok := index.Entries[chart]
	if !ok || len(entries) == 0 {
		return "", fmt.Errorf("%w: %s in %s", ErrChartNotFound, chart, repoURL)
	}

	var stable []string
	for _, entry := range entries {
		if isPrerelease(entry.Version) {
			continue
		}
		stable = append(stable, entry.Version)
	}
	if len(stable) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoStableVersions, chart)
	}

	versions.SortDescending(stable)
	return stable[0], nil
}

func isPrerelease(version string) bool {
	return strings.Contains(version, "dev") ||
		strings.Contains(version, "alpha") ||
		strings.Contains(version, "beta")
}
