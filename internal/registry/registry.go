package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"

	"github.com/neboman11/service-update-bot/models"
)

var (
	// ErrUnsupportedRegistry marks an image whose registry has no tag
	// listing implementation. Not a soft skip: the caller must surface it.
	ErrUnsupportedRegistry = errors.New("unsupported registry")
	// ErrNoMatchingTags means the registry answered but nothing survived the
	// version-pattern filter.
	ErrNoMatchingTags = errors.New("no tags matching pattern")
)

// Resolver finds the latest version-like tag an image's registry offers.
type Resolver struct {
	client    *resty.Client
	ghcrToken string

	dockerBaseURL string
	ghcrBaseURL   string
	quayBaseURL   string
}

func NewResolver(client *resty.Client, ghcrToken string) *Resolver {
	return &Resolver{
		client:        client,
		ghcrToken:     ghcrToken,
		dockerBaseURL: "https://hub.docker.com",
		ghcrBaseURL:   "https://api.github.com",
		quayBaseURL:   "https://quay.io",
	}
}

// LatestTag lists the registry's tags for ref, discards anything that does
// not look like a plain version (optional leading v, three or four numeric
// groups), and returns the highest survivor.
func (r *Resolver) LatestTag(ctx context.Context, ref models.ImageReference) (string, error) {
	var (
		tags []string
		err  error
	)
	switch ref.Registry {
	case "docker.io":
		tags, err = r.fetchDockerTags(ctx, ref.Repository)
	case "ghcr.io":
		tags, err = r.fetchGHCRTags(ctx, ref.Repository)
	case "quay.io":
		tags, err = r.fetchQuayTags(ctx, ref.Repository)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedRegistry, ref.Registry)
	}
	if err != nil {
		return "", err
	}

	latest, ok := LatestMatching(tags)
	if !ok {
		log.WithField("image", ref.Name).Warn("No tags matching pattern found")
		return "", ErrNoMatchingTags
	}
	return latest, nil
}

type dockerTagPage struct {
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

func (r *Resolver) fetchDockerTags(ctx context.Context, repository string) ([]string, error) {
	var page dockerTagPage
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&page).
		Get(fmt.Sprintf("%s/v2/repositories/%s/tags/", r.dockerBaseURL, repository))
	if err != nil {
		return nil, fmt.Errorf("pulling tags from Docker for %s: %w", repository, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("pulling tags from Docker for %s: status %d", repository, resp.StatusCode())
	}
	tags := make([]string, 0, len(page.Results))
	for _, result := range page.Results {
		tags = append(tags, result.Name)
	}
	return tags, nil
}

type ghcrVersion struct {
	Metadata struct {
		Container struct {
			Tags []string `json:"tags"`
		} `json:"container"`
	} `json:"metadata"`
}

// fetchGHCRTags enumerates package versions page by page until GHCR returns
// an empty page, flattening each version's tag list.
func (r *Resolver) fetchGHCRTags(ctx context.Context, repository string) ([]string, error) {
	user, pkg, ok := strings.Cut(repository, "/")
	if !ok {
		return nil, fmt.Errorf("ghcr repository %q has no owner segment", repository)
	}
	// Nested package paths are a single URL path segment on the API.
	pkg = strings.ReplaceAll(pkg, "/", "%2F")

	var tags []string
	for pageNum := 1; ; pageNum++ {
		var versions []ghcrVersion
		resp, err := r.client.R().
			SetContext(ctx).
			SetAuthToken(r.ghcrToken).
			SetResult(&versions).
			SetQueryParam("page", fmt.Sprintf("%d", pageNum)).
			Get(fmt.Sprintf("%s/users/%s/packages/container/%s/versions", r.ghcrBaseURL, user, pkg))
		if err != nil {
			return nil, fmt.Errorf("pulling tags from GHCR for %s: %w", repository, err)
		}
		if !resp.IsSuccess() {
			return nil, fmt.Errorf("pulling tags from GHCR for %s: status %d", repository, resp.StatusCode())
		}
		if len(versions) == 0 {
			break
		}
		for _, version := range versions {
			tags = append(tags, version.Metadata.Container.Tags...)
		}
	}
	return tags, nil
}

type quayTagPage struct {
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

func (r *Resolver) fetchQuayTags(ctx context.Context, repository string) ([]string, error) {
	var page quayTagPage
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&page).
		Get(fmt.Sprintf("%s/api/v1/repository/%s/tag/", r.quayBaseURL, repository))
	if err != nil {
		return nil, fmt.Errorf("pulling tags from Quay for %s: %w", repository, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("pulling tags from Quay for %s: status %d", repository, resp.StatusCode())
	}
	tags := make([]string, 0, len(page.Tags))
	for _, tag := range page.Tags {
		tags = append(tags, tag.Name)
	}
	return tags, nil
}
