package models

import "strings"

const dockerRegistry = "docker.io"

// ImageReference is a parsed container image reference.
type ImageReference struct {
	// Name is the registry-qualified name without the tag, exactly as it
	// should be written back into a manifest.
	Name string
	// Registry is the host serving the image, docker.io when the reference
	// carries no dot-containing host segment.
	Registry string
	// Repository is the path within the registry. Single-segment Docker Hub
	// repositories are prefixed with library/ for API lookups.
	Repository string
	// Tag is the currently pinned tag.
	Tag string
}

// ParseImageReference splits a combined registry/repo:tag string. A reference
// without any slash is treated as a Docker Hub image and gets the docker.io
// prefix, matching how it will be rewritten on update.
func ParseImageReference(image string) ImageReference {
	if !strings.Contains(image, "/") {
		image = dockerRegistry + "/" + image
	}

	name := image
	tag := ""
	if idx := strings.LastIndex(image, ":"); idx != -1 {
		name = image[:idx]
		tag = image[idx+1:]
	}

	registry := dockerRegistry
	repository := name
	parts := strings.Split(name, "/")
	if len(parts) > 1 && strings.Contains(parts[0], ".") {
		registry = parts[0]
		repository = strings.Join(parts[1:], "/")
	}

	if registry == dockerRegistry && !strings.HasPrefix(repository, "library/") && !strings.Contains(repository, "/") {
		repository = "library/" + repository
	}

	return ImageReference{
		Name:       name,
		Registry:   registry,
		Repository: repository,
		Tag:        tag,
	}
}

// WithTag renders the reference with a replacement tag.
func (r ImageReference) WithTag(tag string) string {
	return r.Name + ":" + tag
}
