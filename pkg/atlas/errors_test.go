package atlas_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

func TestAPIError_Error(t *testing.T) {
	apiErr := &atlas.APIError{
		Detail:    "No cluster named foo exists in group 5991f3a0.",
		Status:    404,
		ErrorCode: "CLUSTER_NOT_FOUND",
	}

	assert.Equal(t, "CLUSTER_NOT_FOUND: No cluster named foo exists in group 5991f3a0. (code: 404)", apiErr.Error())
}

func TestParseAPIError(t *testing.T) {
	payload := []byte(`{
		"detail": "Current user is not authorized to perform this action.",
		"error": 401,
		"errorCode": "USER_UNAUTHORIZED",
		"reason": "Unauthorized",
		"parameters": ["GET"]
	}`)

	apiErr, err := atlas.ParseAPIError(payload)
	require.NoError(t, err)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "USER_UNAUTHORIZED", apiErr.ErrorCode)
	assert.Equal(t, "Unauthorized", apiErr.Reason)
	assert.Equal(t, []string{"GET"}, apiErr.Parameters)
}

func TestParseAPIError_Invalid(t *testing.T) {
	_, err := atlas.ParseAPIError([]byte("not json"))
	assert.Error(t, err)
}

func TestStatusPredicates(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		notFound     bool
		unauthorized bool
		forbidden    bool
	}{
		{
			name:     "not found",
			err:      &atlas.APIError{Status: 404, ErrorCode: "CLUSTER_NOT_FOUND"},
			notFound: true,
		},
		{
			name:         "unauthorized",
			err:          &atlas.APIError{Status: 401},
			unauthorized: true,
		},
		{
			name:      "forbidden",
			err:       &atlas.APIError{Status: 403},
			forbidden: true,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("getting cluster: %w", &atlas.APIError{Status: 404}),
			notFound: true,
		},
		{
			name: "server error",
			err:  &atlas.APIError{Status: 500},
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, atlas.IsNotFound(tt.err))
			assert.Equal(t, tt.unauthorized, atlas.IsUnauthorized(tt.err))
			assert.Equal(t, tt.forbidden, atlas.IsForbidden(tt.err))
		})
	}
}

func TestPaginationLimitsError_Error(t *testing.T) {
	pageErr := &atlas.PaginationLimitsError{PageNum: 0, ItemsPerPage: 100, Min: 1, Max: 500}
	assert.Contains(t, pageErr.Error(), "pageNum 0")

	sizeErr := &atlas.PaginationLimitsError{PageNum: 1, ItemsPerPage: 501, Min: 1, Max: 500}
	assert.Contains(t, sizeErr.Error(), "itemsPerPage 501")
	assert.Contains(t, sizeErr.Error(), "[1, 500]")
}

func TestConfirmationRequiredError_Error(t *testing.T) {
	err := &atlas.ConfirmationRequiredError{Operation: "delete cluster", Resource: "prod-cluster"}
	assert.Equal(t, "delete cluster requires explicit confirmation to remove [prod-cluster]", err.Error())
}
