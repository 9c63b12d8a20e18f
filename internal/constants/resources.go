package constants

import (
	"fmt"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// apiResources is the static table of request path templates, keyed by
// resource family and operation name. Positional parameters fill the
// placeholders in order.
var apiResources = map[string]map[string]string{
	"Clusters": {
		"Get All Clusters":     "/groups/%s/clusters?pageNum=%d&itemsPerPage=%d",
		"Get a Single Cluster": "/groups/%s/clusters/%s",
		"Create a Cluster":     "/groups/%s/clusters",
		"Modify a Cluster":     "/groups/%s/clusters/%s",
		"Delete a Cluster":     "/groups/%s/clusters/%s",
	},
	"Access Lists": {
		"Get All Access List Entries": "/groups/%s/accessList?pageNum=%d&itemsPerPage=%d",
		"Get an Access List Entry":    "/groups/%s/accessList/%s",
		"Create Access List Entries":  "/groups/%s/accessList",
		"Delete an Access List Entry": "/groups/%s/accessList/%s",
	},
	"Database Users": {
		"Get All Database Users":     "/groups/%s/databaseUsers?pageNum=%d&itemsPerPage=%d",
		"Get a Single Database User": "/groups/%s/databaseUsers/admin/%s",
		"Create a Database User":     "/groups/%s/databaseUsers",
		"Update a Database User":     "/groups/%s/databaseUsers/admin/%s",
		"Delete a Database User":     "/groups/%s/databaseUsers/admin/%s",
	},
	"Projects": {
		"Get All Projects":        "/groups?pageNum=%d&itemsPerPage=%d",
		"Get One Project":         "/groups/%s",
		"Get One Project by Name": "/groups/byName/%s",
		"Create a Project":        "/groups",
	},
	"Alerts": {
		"Get All Alerts":             "/groups/%s/alerts?pageNum=%d&itemsPerPage=%d",
		"Get All Alerts with Status": "/groups/%s/alerts?status=%s&pageNum=%d&itemsPerPage=%d",
		"Get an Alert":               "/groups/%s/alerts/%s",
		"Acknowledge an Alert":       "/groups/%s/alerts/%s",
	},
}

// ResolvePath builds the request path for the given resource family and
// operation, prefixed with the API version.
func ResolvePath(family, operation string, params ...interface{}) (string, error) {
	operations, ok := apiResources[family]
	if !ok {
		return "", fmt.Errorf("%w: %s", atlas.ErrUnknownResource, family)
	}

	template, ok := operations[operation]
	if !ok {
		return "", fmt.Errorf("%w: %s %q", atlas.ErrUnknownOperation, family, operation)
	}

	return APIPrefix + fmt.Sprintf(template, params...), nil
}
