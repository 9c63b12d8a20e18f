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

// ProjectsClient implements atlas.ProjectsClient. Projects span groups, so
// this client is not scoped to the configured project.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// projectPages adapts the projects list endpoint to the page-fetch shape.
type projectPages struct {
	c *ProjectsClient
}

// FetchPage implements atlas.PageFetcher.
func (p projectPages) FetchPage(ctx context.Context, pageNum, itemsPerPage int) (*atlas.Page[atlas.Project], error) {
	return p.c.listPage(ctx, pageNum, itemsPerPage)
}

// List implements atlas.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts *atlas.ListOptions) (*atlas.Page[atlas.Project], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return c.listPage(ctx, pageNum, itemsPerPage)
}

// Iterate implements atlas.ProjectsClient.Iterate.
func (c *ProjectsClient) Iterate(ctx context.Context, opts *atlas.ListOptions) (*atlas.PageIterator[atlas.Project], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return atlas.NewPageIterator(ctx, projectPages{c: c}, pageNum, itemsPerPage), nil
}

// Get implements atlas.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, groupID string) (*atlas.Project, error) {
	path, err := constants.ResolvePath("Projects", "Get One Project", groupID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project atlas.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &project, nil
}

// GetByName implements atlas.ProjectsClient.GetByName.
func (c *ProjectsClient) GetByName(ctx context.Context, name string) (*atlas.Project, error) {
	path, err := constants.ResolvePath("Projects", "Get One Project by Name", url.PathEscape(name))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project by name: %w", err)
	}

	var project atlas.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &project, nil
}

// Create implements atlas.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *atlas.ProjectCreateRequest) (*atlas.Project, error) {
	path, err := constants.ResolvePath("Projects", "Create a Project")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var project atlas.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// listPage is the single-page fetch shared by List and the iterator binding.
func (c *ProjectsClient) listPage(ctx context.Context, pageNum, itemsPerPage int) (*atlas.Page[atlas.Project], error) {
	path, err := constants.ResolvePath("Projects", "Get All Projects", pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var page atlas.Page[atlas.Project]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing projects list: %w", err)
	}

	return &page, nil
}
