package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlasops-io/atlas-client/internal/constants"
	"github.com/atlasops-io/atlas-client/internal/http"
	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// ClustersClient implements atlas.ClustersClient.
type ClustersClient struct {
	httpClient *http.Client
	groupID    string
}

// NewClustersClient creates a new clusters client scoped to one project.
func NewClustersClient(httpClient *http.Client, groupID string) *ClustersClient {
	return &ClustersClient{
		httpClient: httpClient,
		groupID:    groupID,
	}
}

// clusterPages adapts the clusters list endpoint to the page-fetch shape
// consumed by the pagination engine.
type clusterPages struct {
	c *ClustersClient
}

// FetchPage implements atlas.PageFetcher.
func (p clusterPages) FetchPage(ctx context.Context, pageNum, itemsPerPage int) (*atlas.Page[atlas.Cluster], error) {
	return p.c.listPage(ctx, pageNum, itemsPerPage)
}

// List implements atlas.ClustersClient.List.
func (c *ClustersClient) List(ctx context.Context, opts *atlas.ListOptions) (*atlas.Page[atlas.Cluster], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return c.listPage(ctx, pageNum, itemsPerPage)
}

// Iterate implements atlas.ClustersClient.Iterate.
func (c *ClustersClient) Iterate(ctx context.Context, opts *atlas.ListOptions) (*atlas.PageIterator[atlas.Cluster], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return atlas.NewPageIterator(ctx, clusterPages{c: c}, pageNum, itemsPerPage), nil
}

// Get implements atlas.ClustersClient.Get.
func (c *ClustersClient) Get(ctx context.Context, name string) (*atlas.Cluster, error) {
	path, err := constants.ResolvePath("Clusters", "Get a Single Cluster", c.groupID, name)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting cluster: %w", err)
	}

	var cluster atlas.Cluster

	err = json.Unmarshal(resp.Body, &cluster)
	if err != nil {
		return nil, fmt.Errorf("parsing cluster: %w", err)
	}

	return &cluster, nil
}

// Exists reports whether the named cluster exists. Not part of the Atlas API
// but provided to simplify some code.
func (c *ClustersClient) Exists(ctx context.Context, name string) (bool, error) {
	_, err := c.Get(ctx, name)
	if err != nil {
		if atlas.IsNotFound(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Create implements atlas.ClustersClient.Create.
func (c *ClustersClient) Create(ctx context.Context, request *atlas.ClusterCreateRequest) (*atlas.Cluster, error) {
	path, err := constants.ResolvePath("Clusters", "Create a Cluster", c.groupID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating cluster: %w", err)
	}

	var cluster atlas.Cluster

	err = json.Unmarshal(resp.Body, &cluster)
	if err != nil {
		return nil, fmt.Errorf("parsing cluster response: %w", err)
	}

	return &cluster, nil
}

// Update implements atlas.ClustersClient.Update.
func (c *ClustersClient) Update(ctx context.Context, name string, request *atlas.ClusterUpdateRequest) (*atlas.Cluster, error) {
	path, err := constants.ResolvePath("Clusters", "Modify a Cluster", c.groupID, name)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating cluster: %w", err)
	}

	var cluster atlas.Cluster

	err = json.Unmarshal(resp.Body, &cluster)
	if err != nil {
		return nil, fmt.Errorf("parsing cluster response: %w", err)
	}

	return &cluster, nil
}

// Delete implements atlas.ClustersClient.Delete. The confirm flag guards
// against deleting a cluster by mistake; without it no request is sent.
func (c *ClustersClient) Delete(ctx context.Context, name string, confirm bool) error {
	if !confirm {
		return &atlas.ConfirmationRequiredError{Operation: "delete cluster", Resource: name}
	}

	path, err := constants.ResolvePath("Clusters", "Delete a Cluster", c.groupID, name)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting cluster: %w", err)
	}

	return nil
}

// listPage is the single-page fetch shared by List and the iterator binding.
func (c *ClustersClient) listPage(ctx context.Context, pageNum, itemsPerPage int) (*atlas.Page[atlas.Cluster], error) {
	path, err := constants.ResolvePath("Clusters", "Get All Clusters", c.groupID, pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing clusters: %w", err)
	}

	var page atlas.Page[atlas.Cluster]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing clusters list: %w", err)
	}

	return &page, nil
}
