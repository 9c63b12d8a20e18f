// Package atlasclient provides the main entry point for creating Atlas API
// clients.
package atlasclient

import (
	"strings"

	"github.com/atlasops-io/atlas-client/internal/client"
	"github.com/atlasops-io/atlas-client/internal/constants"
	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// New creates a new Atlas API client for the project named by
// config.GroupID. The base URL is normalized: a trailing slash is trimmed
// and "https://" is added when no scheme is present.
func New(config *atlas.Config) (atlas.Client, error) {
	if config == nil {
		return nil, atlas.ErrConfigRequired
	}

	if config.PublicKey == "" {
		return nil, atlas.ErrPublicKeyRequired
	}

	if config.PrivateKey == "" {
		return nil, atlas.ErrPrivateKeyRequired
	}

	if config.GroupID == "" {
		return nil, atlas.ErrGroupIDRequired
	}

	config.BaseURL = normalizeBaseURL(config.BaseURL)

	return client.New(config), nil
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
