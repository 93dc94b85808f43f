package registry

import (
	"regexp"

	"github.com/neboman11/service-update-bot/internal/versions"
)

// Candidate tags are an optional leading v followed by three or four
// dot-separated numeric groups. Everything else (latest, prereleases,
// arbitrary labels) is discarded outright.
var tagPattern = regexp.MustCompile(`^v?\d+\.\d+\.\d+(\.\d+)?$`)

// FilterAndSort keeps version-like tags and orders them highest first.
func FilterAndSort(tags []string) []string {
	var filtered []string
	for _, tag := range tags {
		if tagPattern.MatchString(tag) {
			filtered = append(filtered, tag)
		}
	}
	versions.SortDescending(filtered)
	return filtered
}

// LatestMatching returns the highest version-like tag, if any survive.
func LatestMatching(tags []string) (string, bool) {
	filtered := FilterAndSort(tags)
	if len(filtered) == 0 {
		return "", false
	}
	return filtered[0], true
}
