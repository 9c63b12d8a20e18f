package atlas

import (
	"time"
)

// Link represents a relation link attached to API resources and envelopes.
type Link struct {
	Href string `json:"href" yaml:"href"`
	Rel  string `json:"rel"  yaml:"rel"`
}

// Page is the envelope returned by every Atlas list endpoint.
type Page[T any] struct {
	Links      []Link `json:"links,omitempty" yaml:"links,omitempty"`
	Results    []T    `json:"results"         yaml:"results"`
	TotalCount int    `json:"totalCount"      yaml:"totalCount"`
}

// Cluster represents an Atlas cluster.
type Cluster struct {
	ID                    string            `json:"id,omitempty"                   yaml:"id,omitempty"`
	GroupID               string            `json:"groupId,omitempty"              yaml:"groupId,omitempty"`
	Name                  string            `json:"name"                           yaml:"name"`
	ClusterType           string            `json:"clusterType,omitempty"          yaml:"clusterType,omitempty"`
	MongoDBVersion        string            `json:"mongoDBVersion,omitempty"       yaml:"mongoDBVersion,omitempty"`
	MongoDBMajorVersion   string            `json:"mongoDBMajorVersion,omitempty"  yaml:"mongoDBMajorVersion,omitempty"`
	MongoURI              string            `json:"mongoURI,omitempty"             yaml:"mongoURI,omitempty"`
	MongoURIWithOptions   string            `json:"mongoURIWithOptions,omitempty"  yaml:"mongoURIWithOptions,omitempty"`
	SrvAddress            string            `json:"srvAddress,omitempty"           yaml:"srvAddress,omitempty"`
	DiskSizeGB            float64           `json:"diskSizeGB,omitempty"           yaml:"diskSizeGB,omitempty"`
	NumShards             int               `json:"numShards,omitempty"            yaml:"numShards,omitempty"`
	ReplicationFactor     int               `json:"replicationFactor,omitempty"    yaml:"replicationFactor,omitempty"`
	BackupEnabled         bool              `json:"backupEnabled"                  yaml:"backupEnabled"`
	ProviderBackupEnabled bool              `json:"providerBackupEnabled"          yaml:"providerBackupEnabled"`
	Paused                bool              `json:"paused"                         yaml:"paused"`
	StateName             string            `json:"stateName,omitempty"            yaml:"stateName,omitempty"`
	ProviderSettings      *ProviderSettings `json:"providerSettings,omitempty"     yaml:"providerSettings,omitempty"`
	Links                 []Link            `json:"links,omitempty"                yaml:"links,omitempty"`
}

// ProviderSettings describes the cloud provider backing a cluster.
type ProviderSettings struct {
	ProviderName        string `json:"providerName"                  yaml:"providerName"`
	BackingProviderName string `json:"backingProviderName,omitempty" yaml:"backingProviderName,omitempty"`
	RegionName          string `json:"regionName,omitempty"          yaml:"regionName,omitempty"`
	InstanceSizeName    string `json:"instanceSizeName,omitempty"    yaml:"instanceSizeName,omitempty"`
	DiskIOPS            int    `json:"diskIOPS,omitempty"            yaml:"diskIOPS,omitempty"`
	EncryptEBSVolume    bool   `json:"encryptEBSVolume,omitempty"    yaml:"encryptEBSVolume,omitempty"`
}

// ClusterCreateRequest is the payload for creating a cluster.
type ClusterCreateRequest struct {
	Name                string            `json:"name"                          yaml:"name"`
	ClusterType         string            `json:"clusterType,omitempty"         yaml:"clusterType,omitempty"`
	MongoDBMajorVersion string            `json:"mongoDBMajorVersion,omitempty" yaml:"mongoDBMajorVersion,omitempty"`
	DiskSizeGB          float64           `json:"diskSizeGB,omitempty"          yaml:"diskSizeGB,omitempty"`
	NumShards           int               `json:"numShards,omitempty"           yaml:"numShards,omitempty"`
	ReplicationFactor   int               `json:"replicationFactor,omitempty"   yaml:"replicationFactor,omitempty"`
	BackupEnabled       *bool             `json:"backupEnabled,omitempty"       yaml:"backupEnabled,omitempty"`
	ProviderSettings    *ProviderSettings `json:"providerSettings,omitempty"    yaml:"providerSettings,omitempty"`
}

// ClusterUpdateRequest is the payload for modifying a cluster. Only the
// fields set are sent; Atlas merges them into the existing configuration.
type ClusterUpdateRequest struct {
	MongoDBMajorVersion string            `json:"mongoDBMajorVersion,omitempty" yaml:"mongoDBMajorVersion,omitempty"`
	DiskSizeGB          float64           `json:"diskSizeGB,omitempty"          yaml:"diskSizeGB,omitempty"`
	ReplicationFactor   int               `json:"replicationFactor,omitempty"   yaml:"replicationFactor,omitempty"`
	BackupEnabled       *bool             `json:"backupEnabled,omitempty"       yaml:"backupEnabled,omitempty"`
	Paused              *bool             `json:"paused,omitempty"              yaml:"paused,omitempty"`
	ProviderSettings    *ProviderSettings `json:"providerSettings,omitempty"    yaml:"providerSettings,omitempty"`
}

// AccessListEntry represents one entry of a project's IP access list.
// Exactly one of CIDRBlock, IPAddress, or AwsSecurityGroup identifies the
// entry.
type AccessListEntry struct {
	GroupID          string     `json:"groupId,omitempty"          yaml:"groupId,omitempty"`
	CIDRBlock        string     `json:"cidrBlock,omitempty"        yaml:"cidrBlock,omitempty"`
	IPAddress        string     `json:"ipAddress,omitempty"        yaml:"ipAddress,omitempty"`
	AwsSecurityGroup string     `json:"awsSecurityGroup,omitempty" yaml:"awsSecurityGroup,omitempty"`
	Comment          string     `json:"comment,omitempty"          yaml:"comment,omitempty"`
	DeleteAfterDate  *time.Time `json:"deleteAfterDate,omitempty"  yaml:"deleteAfterDate,omitempty"`
	Links            []Link     `json:"links,omitempty"            yaml:"links,omitempty"`
}

// DatabaseUserRole grants a role on a database, optionally scoped to a
// collection.
type DatabaseUserRole struct {
	RoleName       string `json:"roleName"                 yaml:"roleName"`
	DatabaseName   string `json:"databaseName"             yaml:"databaseName"`
	CollectionName string `json:"collectionName,omitempty" yaml:"collectionName,omitempty"`
}

// DatabaseUser represents an Atlas database user.
type DatabaseUser struct {
	GroupID      string             `json:"groupId,omitempty"      yaml:"groupId,omitempty"`
	Username     string             `json:"username"               yaml:"username"`
	DatabaseName string             `json:"databaseName,omitempty" yaml:"databaseName,omitempty"`
	LDAPAuthType string             `json:"ldapAuthType,omitempty" yaml:"ldapAuthType,omitempty"`
	Roles        []DatabaseUserRole `json:"roles,omitempty"        yaml:"roles,omitempty"`
	Links        []Link             `json:"links,omitempty"        yaml:"links,omitempty"`
}

// DatabaseUserRequest is the payload for creating a database user.
type DatabaseUserRequest struct {
	Username     string             `json:"username"               yaml:"username"`
	Password     string             `json:"password,omitempty"     yaml:"password,omitempty"`
	DatabaseName string             `json:"databaseName,omitempty" yaml:"databaseName,omitempty"`
	Roles        []DatabaseUserRole `json:"roles,omitempty"        yaml:"roles,omitempty"`
}

// DatabaseUserUpdateRequest is the payload for modifying a database user.
type DatabaseUserUpdateRequest struct {
	Password string             `json:"password,omitempty" yaml:"password,omitempty"`
	Roles    []DatabaseUserRole `json:"roles,omitempty"    yaml:"roles,omitempty"`
}

// Project represents an Atlas project (group).
type Project struct {
	ID           string     `json:"id,omitempty"           yaml:"id,omitempty"`
	OrgID        string     `json:"orgId,omitempty"        yaml:"orgId,omitempty"`
	Name         string     `json:"name"                   yaml:"name"`
	ClusterCount int        `json:"clusterCount,omitempty" yaml:"clusterCount,omitempty"`
	Created      *time.Time `json:"created,omitempty"      yaml:"created,omitempty"`
	Links        []Link     `json:"links,omitempty"        yaml:"links,omitempty"`
}

// ProjectCreateRequest is the payload for creating a project.
type ProjectCreateRequest struct {
	Name  string `json:"name"            yaml:"name"`
	OrgID string `json:"orgId,omitempty" yaml:"orgId,omitempty"`
}

// AlertStatus filters alerts by their current state.
type AlertStatus string

// Alert status values accepted by the alerts list endpoint.
const (
	AlertStatusTracking AlertStatus = "TRACKING"
	AlertStatusOpen     AlertStatus = "OPEN"
	AlertStatusClosed   AlertStatus = "CLOSED"
)

// Alert represents an Atlas alert.
type Alert struct {
	ID                     string             `json:"id"                               yaml:"id"`
	GroupID                string             `json:"groupId,omitempty"                yaml:"groupId,omitempty"`
	AlertConfigID          string             `json:"alertConfigId,omitempty"          yaml:"alertConfigId,omitempty"`
	EventTypeName          string             `json:"eventTypeName,omitempty"          yaml:"eventTypeName,omitempty"`
	Status                 string             `json:"status,omitempty"                 yaml:"status,omitempty"`
	MetricName             string             `json:"metricName,omitempty"             yaml:"metricName,omitempty"`
	ClusterName            string             `json:"clusterName,omitempty"            yaml:"clusterName,omitempty"`
	ReplicaSetName         string             `json:"replicaSetName,omitempty"         yaml:"replicaSetName,omitempty"`
	HostnameAndPort        string             `json:"hostnameAndPort,omitempty"        yaml:"hostnameAndPort,omitempty"`
	Created                *time.Time         `json:"created,omitempty"                yaml:"created,omitempty"`
	Updated                *time.Time         `json:"updated,omitempty"                yaml:"updated,omitempty"`
	Resolved               *time.Time         `json:"resolved,omitempty"               yaml:"resolved,omitempty"`
	LastNotified           *time.Time         `json:"lastNotified,omitempty"           yaml:"lastNotified,omitempty"`
	AcknowledgedUntil      *time.Time         `json:"acknowledgedUntil,omitempty"      yaml:"acknowledgedUntil,omitempty"`
	AcknowledgementComment string             `json:"acknowledgementComment,omitempty" yaml:"acknowledgementComment,omitempty"`
	AcknowledgingUsername  string             `json:"acknowledgingUsername,omitempty"  yaml:"acknowledgingUsername,omitempty"`
	CurrentValue           *AlertCurrentValue `json:"currentValue,omitempty"           yaml:"currentValue,omitempty"`
	Links                  []Link             `json:"links,omitempty"                  yaml:"links,omitempty"`
}

// AlertCurrentValue carries the measured value that triggered a metric alert.
type AlertCurrentValue struct {
	Number float64 `json:"number" yaml:"number"`
	Units  string  `json:"units"  yaml:"units"`
}

// AlertAcknowledgeRequest is the payload for acknowledging an alert. The
// timestamp is always absolute UTC, never a relative duration.
type AlertAcknowledgeRequest struct {
	AcknowledgedUntil      string `json:"acknowledgedUntil"                yaml:"acknowledgedUntil"`
	AcknowledgementComment string `json:"acknowledgementComment,omitempty" yaml:"acknowledgementComment,omitempty"`
}
