// Package versions orders version-like strings the way a human would:
// dot-separated numeric segments compared numerically, an optional leading v
// ignored, ties broken by segment count. Semver libraries were a poor fit
// here because registries serve four-segment tags like v2.0.0.1 and chart
// indexes are pre-filtered by substring rather than prerelease rules.
package versions

import (
	"sort"
	"strconv"
	"strings"
)

// Compare returns -1, 0 or 1 ordering a before, equal to or after b.
// Non-numeric segments fall back to string comparison.
func Compare(a, b string) int {
	segsA := strings.Split(strings.TrimPrefix(a, "v"), ".")
	segsB := strings.Split(strings.TrimPrefix(b, "v"), ".")

	for i := 0; i < len(segsA) && i < len(segsB); i++ {
		numA, errA := strconv.Atoi(segsA[i])
		numB, errB := strconv.Atoi(segsB[i])
		switch {
		case errA == nil && errB == nil:
			if numA != numB {
				if numA < numB {
					return -1
				}
				return 1
			}
		default:
			if c := strings.Compare(segsA[i], segsB[i]); c != 0 {
				return c
			}
		}
	}

	switch {
	case len(segsA) < len(segsB):
		return -1
	case len(segsA) > len(segsB):
		return 1
	}
	return 0
}

// SortDescending orders versions highest first, in place.
func SortDescending(list []string) {
	sort.SliceStable(list, func(i, j int) bool {
		return Compare(list[i], list[j]) > 0
	})
}
