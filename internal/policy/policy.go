// Package policy classifies detected updates as safe (same major version,
// eligible for auto-merge) or risky (major bump, held for review).
package policy

import (
	"strings"

	"github.com/neboman11/service-update-bot/models"
)

// IsSafe reports whether original and next share the same leading
// dot-separated component.
func IsSafe(original, next string) bool {
	return major(original) == major(next)
}

// IsSafeTag is the image-tag variant: tags with fewer than two dot segments
// carry too little information to assess, so they are risky unconditionally.
func IsSafeTag(original, next string) bool {
	if strings.Count(original, ".") < 1 || strings.Count(next, ".") < 1 {
		return false
	}
	return IsSafe(original, next)
}

// IsSafeUpdate applies the right rule for the update's source category.
func IsSafeUpdate(update models.Update) bool {
	if update.Category() == models.CategoryDeployment {
		return IsSafeTag(update.FromVersion(), update.ToVersion())
	}
	return IsSafe(update.FromVersion(), update.ToVersion())
}

// Partition splits updates into the safe and risky groups, preserving order.
func Partition(updates []models.Update) (safe, risky []models.Update) {
	for _, update := range updates {
		if IsSafeUpdate(update) {
			safe = append(safe, update)
		} else {
			risky = append(risky, update)
		}
	}
	return safe, risky
}

func major(version string) string {
	segment, _, _ := strings.Cut(version, ".")
	return segment
}
