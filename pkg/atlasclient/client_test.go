package atlasclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
	"github.com/atlasops-io/atlas-client/pkg/atlasclient"
)

func validConfig() *atlas.Config {
	return &atlas.Config{
		PublicKey:  "lmgpkrio",
		PrivateKey: "a29ec506-3da8-4576-b587-7a6318e5c626",
		GroupID:    "5991f3a0bcd19a2205b43fe4",
	}
}

func TestNew(t *testing.T) {
	client, err := atlasclient.New(validConfig())
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.Equal(t, "5991f3a0bcd19a2205b43fe4", client.GroupID())
	assert.NotNil(t, client.Clusters())
	assert.NotNil(t, client.AccessLists())
	assert.NotNil(t, client.DatabaseUsers())
	assert.NotNil(t, client.Projects())
	assert.NotNil(t, client.Alerts())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*atlas.Config)
		nilCfg  bool
		wantErr error
	}{
		{
			name:    "nil config",
			nilCfg:  true,
			wantErr: atlas.ErrConfigRequired,
		},
		{
			name:    "missing public key",
			mutate:  func(c *atlas.Config) { c.PublicKey = "" },
			wantErr: atlas.ErrPublicKeyRequired,
		},
		{
			name:    "missing private key",
			mutate:  func(c *atlas.Config) { c.PrivateKey = "" },
			wantErr: atlas.ErrPrivateKeyRequired,
		},
		{
			name:    "missing group ID",
			mutate:  func(c *atlas.Config) { c.GroupID = "" },
			wantErr: atlas.ErrGroupIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var config *atlas.Config
			if !tt.nilCfg {
				config = validConfig()
				tt.mutate(config)
			}

			client, err := atlasclient.New(config)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, client)
		})
	}
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "empty defaults to public endpoint", baseURL: "", want: "https://cloud.mongodb.com"},
		{name: "trailing slash trimmed", baseURL: "https://cloud.example.com/", want: "https://cloud.example.com"},
		{name: "scheme added", baseURL: "cloud.example.com", want: "https://cloud.example.com"},
		{name: "http left alone", baseURL: "http://localhost:8080", want: "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.BaseURL = tt.baseURL

			_, err := atlasclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.BaseURL)
		})
	}
}
