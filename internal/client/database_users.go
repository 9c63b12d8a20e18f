package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlasops-io/atlas-client/internal/constants"
	"github.com/atlasops-io/atlas-client/internal/http"
	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// DatabaseUsersClient implements atlas.DatabaseUsersClient.
type DatabaseUsersClient struct {
	httpClient *http.Client
	groupID    string
}

// NewDatabaseUsersClient creates a new database users client scoped to one
// project.
func NewDatabaseUsersClient(httpClient *http.Client, groupID string) *DatabaseUsersClient {
	return &DatabaseUsersClient{
		httpClient: httpClient,
		groupID:    groupID,
	}
}

// databaseUserPages adapts the database users endpoint to the page-fetch
// shape.
type databaseUserPages struct {
	c *DatabaseUsersClient
}

// FetchPage implements atlas.PageFetcher.
func (p databaseUserPages) FetchPage(ctx context.Context, pageNum, itemsPerPage int) (*atlas.Page[atlas.DatabaseUser], error) {
	return p.c.listPage(ctx, pageNum, itemsPerPage)
}

// List implements atlas.DatabaseUsersClient.List.
func (c *DatabaseUsersClient) List(ctx context.Context, opts *atlas.ListOptions) (*atlas.Page[atlas.DatabaseUser], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return c.listPage(ctx, pageNum, itemsPerPage)
}

// Iterate implements atlas.DatabaseUsersClient.Iterate.
func (c *DatabaseUsersClient) Iterate(ctx context.Context, opts *atlas.ListOptions) (*atlas.PageIterator[atlas.DatabaseUser], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return atlas.NewPageIterator(ctx, databaseUserPages{c: c}, pageNum, itemsPerPage), nil
}

// Get implements atlas.DatabaseUsersClient.Get.
func (c *DatabaseUsersClient) Get(ctx context.Context, username string) (*atlas.DatabaseUser, error) {
	path, err := constants.ResolvePath("Database Users", "Get a Single Database User", c.groupID, username)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting database user: %w", err)
	}

	var user atlas.DatabaseUser

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing database user: %w", err)
	}

	return &user, nil
}

// Create implements atlas.DatabaseUsersClient.Create.
func (c *DatabaseUsersClient) Create(ctx context.Context, request *atlas.DatabaseUserRequest) (*atlas.DatabaseUser, error) {
	path, err := constants.ResolvePath("Database Users", "Create a Database User", c.groupID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating database user: %w", err)
	}

	var user atlas.DatabaseUser

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing database user response: %w", err)
	}

	return &user, nil
}

// Update implements atlas.DatabaseUsersClient.Update.
func (c *DatabaseUsersClient) Update(ctx context.Context, username string, request *atlas.DatabaseUserUpdateRequest) (*atlas.DatabaseUser, error) {
	path, err := constants.ResolvePath("Database Users", "Update a Database User", c.groupID, username)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating database user: %w", err)
	}

	var user atlas.DatabaseUser

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing database user response: %w", err)
	}

	return &user, nil
}

// Delete implements atlas.DatabaseUsersClient.Delete. The confirm flag guards
// against removing a user by mistake; without it no request is sent.
func (c *DatabaseUsersClient) Delete(ctx context.Context, username string, confirm bool) error {
	if !confirm {
		return &atlas.ConfirmationRequiredError{Operation: "delete database user", Resource: username}
	}

	path, err := constants.ResolvePath("Database Users", "Delete a Database User", c.groupID, username)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting database user: %w", err)
	}

	return nil
}

// listPage is the single-page fetch shared by List and the iterator binding.
func (c *DatabaseUsersClient) listPage(ctx context.Context, pageNum, itemsPerPage int) (*atlas.Page[atlas.DatabaseUser], error) {
	path, err := constants.ResolvePath("Database Users", "Get All Database Users", c.groupID, pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing database users: %w", err)
	}

	var page atlas.Page[atlas.DatabaseUser]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing database users list: %w", err)
	}

	return &page, nil
}
