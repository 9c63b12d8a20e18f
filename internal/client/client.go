// Package client implements the atlas.Client interface and the concrete
// resource clients behind it.
package client

import (
	"github.com/atlasops-io/atlas-client/internal/auth"
	"github.com/atlasops-io/atlas-client/internal/constants"
	"github.com/atlasops-io/atlas-client/internal/http"
	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// Client implements the atlas.Client interface.
type Client struct {
	httpClient *http.Client
	groupID    string
	logger     atlas.Logger

	// Resource clients
	clusters      atlas.ClustersClient
	accessLists   atlas.AccessListsClient
	databaseUsers atlas.DatabaseUsersClient
	projects      atlas.ProjectsClient
	alerts        atlas.AlertsClient
}

// New creates a new Atlas API client from the given config. The config is
// expected to be validated and normalized by the caller (see atlasclient.New).
func New(config *atlas.Config) *Client {
	var authenticator auth.Authenticator
	if config.PublicKey != "" || config.PrivateKey != "" {
		authenticator = auth.NewAPIKeyAuth(config.PublicKey, config.PrivateKey)
	}

	httpClient := http.NewClient(config.BaseURL, authenticator, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		groupID:    config.GroupID,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client
}

// httpOptions builds transport options from config.
func httpOptions(config *atlas.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.clusters = NewClustersClient(c.httpClient, c.groupID)
	c.accessLists = NewAccessListsClient(c.httpClient, c.groupID)
	c.databaseUsers = NewDatabaseUsersClient(c.httpClient, c.groupID)
	c.projects = NewProjectsClient(c.httpClient)
	c.alerts = NewAlertsClient(c.httpClient, c.groupID)
}

// Clusters implements atlas.Client.Clusters.
func (c *Client) Clusters() atlas.ClustersClient {
	return c.clusters
}

// AccessLists implements atlas.Client.AccessLists.
func (c *Client) AccessLists() atlas.AccessListsClient {
	return c.accessLists
}

// DatabaseUsers implements atlas.Client.DatabaseUsers.
func (c *Client) DatabaseUsers() atlas.DatabaseUsersClient {
	return c.databaseUsers
}

// Projects implements atlas.Client.Projects.
func (c *Client) Projects() atlas.ProjectsClient {
	return c.projects
}

// Alerts implements atlas.Client.Alerts.
func (c *Client) Alerts() atlas.AlertsClient {
	return c.alerts
}

// GroupID implements atlas.Client.GroupID.
func (c *Client) GroupID() string {
	return c.groupID
}
