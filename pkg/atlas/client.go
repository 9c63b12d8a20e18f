package atlas

import (
	"context"
	"time"
)

// ClustersClient manages the clusters of a project.
type ClustersClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Cluster], error)
	Iterate(ctx context.Context, opts *ListOptions) (*PageIterator[Cluster], error)
	Get(ctx context.Context, name string) (*Cluster, error)
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, request *ClusterCreateRequest) (*Cluster, error)
	Update(ctx context.Context, name string, request *ClusterUpdateRequest) (*Cluster, error)
	Delete(ctx context.Context, name string, confirm bool) error
}

// AccessListsClient manages the IP access list of a project.
type AccessListsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[AccessListEntry], error)
	Iterate(ctx context.Context, opts *ListOptions) (*PageIterator[AccessListEntry], error)
	Get(ctx context.Context, value string) (*AccessListEntry, error)
	Create(ctx context.Context, entries []AccessListEntry) (*Page[AccessListEntry], error)
	Delete(ctx context.Context, value string) error
}

// DatabaseUsersClient manages the database users of a project.
type DatabaseUsersClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[DatabaseUser], error)
	Iterate(ctx context.Context, opts *ListOptions) (*PageIterator[DatabaseUser], error)
	Get(ctx context.Context, username string) (*DatabaseUser, error)
	Create(ctx context.Context, request *DatabaseUserRequest) (*DatabaseUser, error)
	Update(ctx context.Context, username string, request *DatabaseUserUpdateRequest) (*DatabaseUser, error)
	Delete(ctx context.Context, username string, confirm bool) error
}

// ProjectsClient manages projects. Project operations are not scoped to the
// configured group.
type ProjectsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Project], error)
	Iterate(ctx context.Context, opts *ListOptions) (*PageIterator[Project], error)
	Get(ctx context.Context, groupID string) (*Project, error)
	GetByName(ctx context.Context, name string) (*Project, error)
	Create(ctx context.Context, request *ProjectCreateRequest) (*Project, error)
}

// AlertsClient manages the alerts of a project. An empty status means all
// alerts regardless of state.
type AlertsClient interface {
	List(ctx context.Context, status AlertStatus, opts *ListOptions) (*Page[Alert], error)
	Iterate(ctx context.Context, status AlertStatus, opts *ListOptions) (*PageIterator[Alert], error)
	Get(ctx context.Context, alertID string) (*Alert, error)
	Acknowledge(ctx context.Context, alertID string, until time.Time, comment string) (*Alert, error)
	Unacknowledge(ctx context.Context, alertID string) (*Alert, error)
	AcknowledgeForever(ctx context.Context, alertID, comment string) (*Alert, error)
}

// Client provides access to all resource-specific clients.
type Client interface {
	Clusters() ClustersClient
	AccessLists() AccessListsClient
	DatabaseUsers() DatabaseUsersClient
	Projects() ProjectsClient
	Alerts() AlertsClient

	// GroupID returns the project the group-scoped clients operate on.
	GroupID() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an atlas.Client.
//
// PublicKey/PrivateKey are an Atlas programmatic API key pair; the transport
// applies them to every request. GroupID selects the project the group-scoped
// resource clients (clusters, access lists, database users, alerts) operate
// on. BaseURL defaults to the public Atlas endpoint and is normalized by
// atlasclient.New (trailing slash trimmed, https:// added when no scheme is
// present).
type Config struct {
	// BaseURL is the API endpoint, e.g. "https://cloud.mongodb.com".
	BaseURL string

	// PublicKey is the public half of the API key pair.
	PublicKey string
	// PrivateKey is the private half of the API key pair.
	PrivateKey string

	// GroupID is the project ID for group-scoped operations.
	GroupID string

	// HTTPTimeout is the per-request timeout. Most callers should rely on
	// context deadlines instead.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of retries for transient failures
	// (>=500 and 429). If 0, the transport default is used.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the transport.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
