package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImageReference(t *testing.T) {
	tests := []struct {
		name           string
		image          string
		wantName       string
		wantRegistry   string
		wantRepository string
		wantTag        string
	}{
		{
			name:           "bare docker hub image",
			image:          "redis:7.2.1",
			wantName:       "docker.io/redis",
			wantRegistry:   "docker.io",
			wantRepository: "library/redis",
			wantTag:        "7.2.1",
		},
		{
			name:           "docker hub with owner",
			image:          "linuxserver/sonarr:4.0.0",
			wantName:       "linuxserver/sonarr",
			wantRegistry:   "docker.io",
			wantRepository: "linuxserver/sonarr",
			wantTag:        "4.0.0",
		},
		{
			name:           "ghcr image",
			image:          "ghcr.io/neboman11/ponyboy:1.2.3",
			wantName:       "ghcr.io/neboman11/ponyboy",
			wantRegistry:   "ghcr.io",
			wantRepository: "neboman11/ponyboy",
			wantTag:        "1.2.3",
		},
		{
			name:           "quay image with nested path",
			image:          "quay.io/prometheus/node-exporter:v1.7.0",
			wantName:       "quay.io/prometheus/node-exporter",
			wantRegistry:   "quay.io",
			wantRepository: "prometheus/node-exporter",
			wantTag:        "v1.7.0",
		},
		{
			name:           "no tag",
			image:          "nginx",
			wantName:       "docker.io/nginx",
			wantRegistry:   "docker.io",
			wantRepository: "library/nginx",
			wantTag:        "",
		},
		{
			name:           "explicit docker.io prefix",
			image:          "docker.io/postgres:16.1",
			wantName:       "docker.io/postgres",
			wantRegistry:   "docker.io",
			wantRepository: "library/postgres",
			wantTag:        "16.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseImageReference(tt.image)

			assert.Equal(t, tt.wantName, ref.Name)
			assert.Equal(t, tt.wantRegistry, ref.Registry)
			assert.Equal(t, tt.wantRepository, ref.Repository)
			assert.Equal(t, tt.wantTag, ref.Tag)
		})
	}
}

func TestWithTag(t *testing.T) {
	ref := ParseImageReference("ghcr.io/neboman11/ponyboy:1.2.3")

	assert.Equal(t, "ghcr.io/neboman11/ponyboy:2.0.0", ref.WithTag("2.0.0"))
}
