package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/atlasops-io/atlas-client/internal/http"
	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

const testGroupID = "5991f3a0bcd19a2205b43fe4"

func TestClustersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/atlas/v1.0/groups/"+testGroupID+"/clusters", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "1", r.URL.Query().Get("pageNum"))
		assert.Equal(t, "100", r.URL.Query().Get("itemsPerPage"))

		page := atlas.Page[atlas.Cluster]{
			Results: []atlas.Cluster{
				{Name: "Cluster0", StateName: "IDLE"},
				{Name: "Cluster1", StateName: "CREATING"},
			},
			TotalCount: 2,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, nil), testGroupID)

	page, err := clusters.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Cluster0", page.Results[0].Name)
	assert.Equal(t, "CREATING", page.Results[1].StateName)
}

func TestClustersClient_List_LimitsViolation(t *testing.T) {
	var requests int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, nil), testGroupID)

	tests := []struct {
		name string
		opts *atlas.ListOptions
	}{
		{name: "oversized page", opts: &atlas.ListOptions{ItemsPerPage: 501}},
		{name: "negative page", opts: &atlas.ListOptions{PageNum: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clusters.List(context.Background(), tt.opts)

			var limitsErr *atlas.PaginationLimitsError
			require.ErrorAs(t, err, &limitsErr)

			_, err = clusters.Iterate(context.Background(), tt.opts)
			require.ErrorAs(t, err, &limitsErr)
		})
	}

	// Validation happens before any network call.
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestClustersClient_Iterate(t *testing.T) {
	var requests int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)

		pageNum := r.URL.Query().Get("pageNum")
		assert.Equal(t, "2", r.URL.Query().Get("itemsPerPage"))

		names := map[string][]string{
			"1": {"c1", "c2"},
			"2": {"c3", "c4"},
			"3": {"c5"},
		}

		page := atlas.Page[atlas.Cluster]{TotalCount: 5}
		for _, name := range names[pageNum] {
			page.Results = append(page.Results, atlas.Cluster{Name: name})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, nil), testGroupID)

	iterator, err := clusters.Iterate(context.Background(), &atlas.ListOptions{ItemsPerPage: 2})
	require.NoError(t, err)

	all, err := iterator.All()
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "c1", all[0].Name)
	assert.Equal(t, "c5", all[4].Name)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
}

func TestClustersClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/atlas/v1.0/groups/"+testGroupID+"/clusters/Cluster0", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		_ = json.NewEncoder(w).Encode(atlas.Cluster{
			Name:           "Cluster0",
			StateName:      "IDLE",
			MongoDBVersion: "7.0.5",
			ProviderSettings: &atlas.ProviderSettings{
				ProviderName:     "AWS",
				RegionName:       "US_EAST_1",
				InstanceSizeName: "M10",
			},
		})
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, nil), testGroupID)

	cluster, err := clusters.Get(context.Background(), "Cluster0")
	require.NoError(t, err)
	assert.Equal(t, "Cluster0", cluster.Name)
	require.NotNil(t, cluster.ProviderSettings)
	assert.Equal(t, "M10", cluster.ProviderSettings.InstanceSizeName)
}

func TestClustersClient_Exists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/atlas/v1.0/groups/"+testGroupID+"/clusters/Cluster0" {
			_ = json.NewEncoder(w).Encode(atlas.Cluster{Name: "Cluster0"})

			return
		}

		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": 404, "errorCode": "CLUSTER_NOT_FOUND", "detail": "no such cluster"}`))
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, nil), testGroupID)

	exists, err := clusters.Exists(context.Background(), "Cluster0")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = clusters.Exists(context.Background(), "NoSuchCluster")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClustersClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/atlas/v1.0/groups/"+testGroupID+"/clusters", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var request atlas.ClusterCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "Cluster0", request.Name)
		require.NotNil(t, request.ProviderSettings)
		assert.Equal(t, "AWS", request.ProviderSettings.ProviderName)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(atlas.Cluster{Name: request.Name, StateName: "CREATING"})
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, nil), testGroupID)

	cluster, err := clusters.Create(context.Background(), &atlas.ClusterCreateRequest{
		Name: "Cluster0",
		ProviderSettings: &atlas.ProviderSettings{
			ProviderName:     "AWS",
			RegionName:       "US_EAST_1",
			InstanceSizeName: "M10",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "CREATING", cluster.StateName)
}

func TestClustersClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/atlas/v1.0/groups/"+testGroupID+"/clusters/Cluster0", r.URL.Path)
		assert.Equal(t, http.MethodPatch, r.Method)

		var request atlas.ClusterUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.NotNil(t, request.Paused)
		assert.True(t, *request.Paused)

		_ = json.NewEncoder(w).Encode(atlas.Cluster{Name: "Cluster0", Paused: true})
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, nil), testGroupID)

	paused := true

	cluster, err := clusters.Update(context.Background(), "Cluster0", &atlas.ClusterUpdateRequest{Paused: &paused})
	require.NoError(t, err)
	assert.True(t, cluster.Paused)
}

func TestClustersClient_Delete_RequiresConfirmation(t *testing.T) {
	var requests int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, nil), testGroupID)

	err := clusters.Delete(context.Background(), "Cluster0", false)
	require.Error(t, err)

	var confirmErr *atlas.ConfirmationRequiredError
	require.ErrorAs(t, err, &confirmErr)
	assert.Equal(t, "delete cluster", confirmErr.Operation)
	assert.Equal(t, "Cluster0", confirmErr.Resource)

	// The guard fires before any request is sent.
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestClustersClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/atlas/v1.0/groups/"+testGroupID+"/clusters/Cluster0", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, nil), testGroupID)

	err := clusters.Delete(context.Background(), "Cluster0", true)
	require.NoError(t, err)
}
