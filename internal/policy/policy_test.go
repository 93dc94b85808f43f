package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neboman11/service-update-bot/models"
)

func TestIsSafe(t *testing.T) {
	tests := []struct {
		name     string
		original string
		next     string
		want     bool
	}{
		{name: "patch bump", original: "1.2.3", next: "1.2.4", want: true},
		{name: "minor bump", original: "1.2.3", next: "1.3.0", want: true},
		{name: "major bump", original: "1.2.3", next: "2.0.0", want: false},
		{name: "same version", original: "4.0.1", next: "4.0.1", want: true},
		{name: "major downgrade", original: "3.1.0", next: "2.9.9", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafe(tt.original, tt.next))
		})
	}
}

func TestIsSafeTag(t *testing.T) {
	tests := []struct {
		name     string
		original string
		next     string
		want     bool
	}{
		{name: "dotted same major", original: "1.2.3", next: "1.4.0", want: true},
		{name: "dotted major bump", original: "1.2.3", next: "2.0.0", want: false},
		{name: "original without dots", original: "latest", next: "1.2.3", want: false},
		{name: "new without dots", original: "1.2.3", next: "latest", want: false},
		{name: "four segment same major", original: "v2.0.0.1", next: "v2.0.0.2", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeTag(tt.original, tt.next))
		})
	}
}

func TestIsSafeUpdate_UsesTagRuleForDeployments(t *testing.T) {
	// A bare "2" shares its major with "2.0.1", so the plain rule would
	// call this safe. The tag rule must not.
	image := &models.ImageUpdate{CurrentTag: "2", NewTag: "2.0.1"}
	assert.False(t, IsSafeUpdate(image))

	chart := &models.ChartRelease{OriginalVersion: "1.2.3", NewVersion: "1.3.0"}
	assert.True(t, IsSafeUpdate(chart))
}

func TestPartition(t *testing.T) {
	safe1 := &models.ChartRelease{ReleaseName: "a", OriginalVersion: "1.2.3", NewVersion: "1.3.0"}
	risky := &models.ChartRelease{ReleaseName: "b", OriginalVersion: "1.2.3", NewVersion: "2.0.0"}
	safe2 := &models.ImageUpdate{ImageName: "c", CurrentTag: "4.1.0", NewTag: "4.2.0"}

	safe, riskyOut := Partition([]models.Update{safe1, risky, safe2})

	assert.Equal(t, []models.Update{safe1, safe2}, safe)
	assert.Equal(t, []models.Update{risky}, riskyOut)
}
