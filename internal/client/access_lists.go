package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/atlasops-io/atlas-client/internal/constants"
	"github.com/atlasops-io/atlas-client/internal/http"
	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// AccessListsClient implements atlas.AccessListsClient.
type AccessListsClient struct {
	httpClient *http.Client
	groupID    string
}

// NewAccessListsClient creates a new IP access list client scoped to one
// project.
func NewAccessListsClient(httpClient *http.Client, groupID string) *AccessListsClient {
	return &AccessListsClient{
		httpClient: httpClient,
		groupID:    groupID,
	}
}

// accessListPages adapts the access list endpoint to the page-fetch shape.
type accessListPages struct {
	c *AccessListsClient
}

// FetchPage implements atlas.PageFetcher.
func (p accessListPages) FetchPage(ctx context.Context, pageNum, itemsPerPage int) (*atlas.Page[atlas.AccessListEntry], error) {
	return p.c.listPage(ctx, pageNum, itemsPerPage)
}

// List implements atlas.AccessListsClient.List.
func (c *AccessListsClient) List(ctx context.Context, opts *atlas.ListOptions) (*atlas.Page[atlas.AccessListEntry], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return c.listPage(ctx, pageNum, itemsPerPage)
}

// Iterate implements atlas.AccessListsClient.Iterate.
func (c *AccessListsClient) Iterate(ctx context.Context, opts *atlas.ListOptions) (*atlas.PageIterator[atlas.AccessListEntry], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return atlas.NewPageIterator(ctx, accessListPages{c: c}, pageNum, itemsPerPage), nil
}

// Get implements atlas.AccessListsClient.Get. The value is an IP address,
// CIDR block, or AWS security group ID identifying the entry.
func (c *AccessListsClient) Get(ctx context.Context, value string) (*atlas.AccessListEntry, error) {
	path, err := constants.ResolvePath("Access Lists", "Get an Access List Entry", c.groupID, url.PathEscape(value))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting access list entry: %w", err)
	}

	var entry atlas.AccessListEntry

	err = json.Unmarshal(resp.Body, &entry)
	if err != nil {
		return nil, fmt.Errorf("parsing access list entry: %w", err)
	}

	return &entry, nil
}

// Create implements atlas.AccessListsClient.Create. The endpoint accepts an
// array of entries and responds with the first page of the resulting list.
func (c *AccessListsClient) Create(ctx context.Context, entries []atlas.AccessListEntry) (*atlas.Page[atlas.AccessListEntry], error) {
	path, err := constants.ResolvePath("Access Lists", "Create Access List Entries", c.groupID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, entries)
	if err != nil {
		return nil, fmt.Errorf("creating access list entries: %w", err)
	}

	var page atlas.Page[atlas.AccessListEntry]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing access list response: %w", err)
	}

	return &page, nil
}

// Delete implements atlas.AccessListsClient.Delete.
func (c *AccessListsClient) Delete(ctx context.Context, value string) error {
	path, err := constants.ResolvePath("Access Lists", "Delete an Access List Entry", c.groupID, url.PathEscape(value))
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting access list entry: %w", err)
	}

	return nil
}

// listPage is the single-page fetch shared by List and the iterator binding.
func (c *AccessListsClient) listPage(ctx context.Context, pageNum, itemsPerPage int) (*atlas.Page[atlas.AccessListEntry], error) {
	path, err := constants.ResolvePath("Access Lists", "Get All Access List Entries", c.groupID, pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing access list entries: %w", err)
	}

	var page atlas.Page[atlas.AccessListEntry]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing access list: %w", err)
	}

	return &page, nil
}
