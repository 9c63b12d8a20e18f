package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atlasops-io/atlas-client/internal/constants"
	"github.com/atlasops-io/atlas-client/internal/http"
	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

// Acknowledgement horizons. To unacknowledge a previously acknowledged
// alert, Atlas wants a timestamp in the past; to acknowledge "forever", one
// far in the future. Both are sent as absolute UTC timestamps.
const (
	unacknowledgeBackoff = 24 * time.Hour
	foreverYears         = 100
)

// AlertsClient implements atlas.AlertsClient.
type AlertsClient struct {
	httpClient *http.Client
	groupID    string
}

// NewAlertsClient creates a new alerts client scoped to one project.
func NewAlertsClient(httpClient *http.Client, groupID string) *AlertsClient {
	return &AlertsClient{
		httpClient: httpClient,
		groupID:    groupID,
	}
}

// alertPages adapts the alerts list endpoint to the page-fetch shape. The
// status filter is bound explicitly so every page fetch carries it.
type alertPages struct {
	c      *AlertsClient
	status atlas.AlertStatus
}

// FetchPage implements atlas.PageFetcher.
func (p alertPages) FetchPage(ctx context.Context, pageNum, itemsPerPage int) (*atlas.Page[atlas.Alert], error) {
	return p.c.listPage(ctx, p.status, pageNum, itemsPerPage)
}

// List implements atlas.AlertsClient.List. An empty status lists alerts in
// every state.
func (c *AlertsClient) List(ctx context.Context, status atlas.AlertStatus, opts *atlas.ListOptions) (*atlas.Page[atlas.Alert], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return c.listPage(ctx, status, pageNum, itemsPerPage)
}

// Iterate implements atlas.AlertsClient.Iterate.
func (c *AlertsClient) Iterate(ctx context.Context, status atlas.AlertStatus, opts *atlas.ListOptions) (*atlas.PageIterator[atlas.Alert], error) {
	pageNum, itemsPerPage := opts.Resolve()

	err := atlas.CheckPaginationLimits(pageNum, itemsPerPage)
	if err != nil {
		return nil, err
	}

	return atlas.NewPageIterator(ctx, alertPages{c: c, status: status}, pageNum, itemsPerPage), nil
}

// Get implements atlas.AlertsClient.Get.
func (c *AlertsClient) Get(ctx context.Context, alertID string) (*atlas.Alert, error) {
	path, err := constants.ResolvePath("Alerts", "Get an Alert", c.groupID, alertID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting alert: %w", err)
	}

	var alert atlas.Alert

	err = json.Unmarshal(resp.Body, &alert)
	if err != nil {
		return nil, fmt.Errorf("parsing alert: %w", err)
	}

	return &alert, nil
}

// Acknowledge implements atlas.AlertsClient.Acknowledge. The until timestamp
// is normalized to UTC and truncated to whole seconds before it is sent.
func (c *AlertsClient) Acknowledge(ctx context.Context, alertID string, until time.Time, comment string) (*atlas.Alert, error) {
	request := &atlas.AlertAcknowledgeRequest{
		AcknowledgedUntil:      until.UTC().Truncate(time.Second).Format(time.RFC3339),
		AcknowledgementComment: comment,
	}

	path, err := constants.ResolvePath("Alerts", "Acknowledge an Alert", c.groupID, alertID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("acknowledging alert: %w", err)
	}

	var alert atlas.Alert

	err = json.Unmarshal(resp.Body, &alert)
	if err != nil {
		return nil, fmt.Errorf("parsing alert response: %w", err)
	}

	return &alert, nil
}

// Unacknowledge implements atlas.AlertsClient.Unacknowledge by acknowledging
// until a timestamp one day in the past.
func (c *AlertsClient) Unacknowledge(ctx context.Context, alertID string) (*atlas.Alert, error) {
	until := time.Now().UTC().Add(-unacknowledgeBackoff)

	return c.Acknowledge(ctx, alertID, until, "")
}

// AcknowledgeForever implements atlas.AlertsClient.AcknowledgeForever by
// acknowledging until a timestamp 100 years in the future.
func (c *AlertsClient) AcknowledgeForever(ctx context.Context, alertID, comment string) (*atlas.Alert, error) {
	until := time.Now().UTC().AddDate(foreverYears, 0, 0)

	return c.Acknowledge(ctx, alertID, until, comment)
}

// listPage is the single-page fetch shared by List and the iterator binding.
func (c *AlertsClient) listPage(ctx context.Context, status atlas.AlertStatus, pageNum, itemsPerPage int) (*atlas.Page[atlas.Alert], error) {
	var (
		path string
		err  error
	)

	if status != "" {
		path, err = constants.ResolvePath("Alerts", "Get All Alerts with Status", c.groupID, status, pageNum, itemsPerPage)
	} else {
		path, err = constants.ResolvePath("Alerts", "Get All Alerts", c.groupID, pageNum, itemsPerPage)
	}

	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing alerts: %w", err)
	}

	var page atlas.Page[atlas.Alert]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing alerts list: %w", err)
	}

	return &page, nil
}
