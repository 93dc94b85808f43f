package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterAndSort(t *testing.T) {
	tags := []string{"1.2.3", "1.2.3-rc1", "latest", "v2.0.0.1", "abc", "1.10.0"}

	assert.Equal(t, []string{"v2.0.0.1", "1.10.0", "1.2.3"}, FilterAndSort(tags))
}

func TestLatestMatching(t *testing.T) {
	latest, ok := LatestMatching([]string{"0.9.0", "1.2.3", "nightly"})
	assert.True(t, ok)
	assert.Equal(t, "1.2.3", latest)

	_, ok = LatestMatching([]string{"latest", "stable", "edge"})
	assert.False(t, ok)

	_, ok = LatestMatching(nil)
	assert.False(t, ok)
}
