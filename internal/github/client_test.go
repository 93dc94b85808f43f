package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	client, err := New("token", "neboman11/argocd-definitions")

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_RejectsMalformedRepository(t *testing.T) {
	tests := []struct {
		name       string
		repository string
	}{
		{name: "no slash", repository: "argocd-definitions"},
		{name: "empty owner", repository: "/argocd-definitions"},
		{name: "empty name", repository: "neboman11/"},
		{name: "empty", repository: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("token", tt.repository)
			assert.Error(t, err)
		})
	}
}
