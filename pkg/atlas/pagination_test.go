package atlas_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasops-io/atlas-client/pkg/atlas"
)

type testResource struct {
	ID   string
	Name string
}

// mockFetcher serves pages of a fixed collection and counts fetches. Pages
// listed in failures return their error instead.
type mockFetcher struct {
	items    []testResource
	failures map[int]error
	calls    int
}

func newMockFetcher(total int) *mockFetcher {
	items := make([]testResource, 0, total)
	for i := 1; i <= total; i++ {
		items = append(items, testResource{
			ID:   fmt.Sprintf("%d", i),
			Name: fmt.Sprintf("Resource %d", i),
		})
	}

	return &mockFetcher{items: items, failures: map[int]error{}}
}

func (m *mockFetcher) FetchPage(_ context.Context, pageNum, itemsPerPage int) (*atlas.Page[testResource], error) {
	m.calls++

	if err, ok := m.failures[pageNum]; ok {
		return nil, err
	}

	start := (pageNum - 1) * itemsPerPage
	if start > len(m.items) {
		start = len(m.items)
	}

	end := start + itemsPerPage
	if end > len(m.items) {
		end = len(m.items)
	}

	return &atlas.Page[testResource]{
		Results:    m.items[start:end],
		TotalCount: len(m.items),
	}, nil
}

func TestPageIterator_SinglePage(t *testing.T) {
	fetcher := newMockFetcher(3)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 10)

	items, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[2].ID)

	// A single page that covers the whole collection needs exactly one fetch.
	assert.Equal(t, 1, fetcher.calls)
}

func TestPageIterator_SinglePageExactBoundary(t *testing.T) {
	// totalCount equal to itemsPerPage is the tightest fencepost of the
	// remaining-pages bound: the page is full, yet nothing follows it.
	fetcher := newMockFetcher(5)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 5)

	items, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, 1, fetcher.calls)

	assert.False(t, iterator.HasNext())
	assert.Equal(t, 1, fetcher.calls)
}

func TestPageIterator_ExactMultipleOfPageSize(t *testing.T) {
	// A collection that fills its last page exactly must not cost a
	// trailing near-empty fetch.
	fetcher := newMockFetcher(20)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 10)

	items, err := iterator.All()
	require.NoError(t, err)
	require.Len(t, items, 20)
	assert.Equal(t, "20", items[19].ID)
	assert.Equal(t, 2, fetcher.calls)
}

func TestPageIterator_EmptyCollection(t *testing.T) {
	fetcher := newMockFetcher(0)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 10)

	items, err := iterator.All()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, fetcher.calls)

	assert.False(t, iterator.HasNext())

	_, err = iterator.Next()
	assert.ErrorIs(t, err, atlas.ErrNoMoreItems)
}

func TestPageIterator_MultiplePages(t *testing.T) {
	fetcher := newMockFetcher(25)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 10)

	items, err := iterator.All()
	require.NoError(t, err)
	require.Len(t, items, 25)

	// Order must follow the pages.
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("%d", i+1), item.ID)
	}

	assert.Equal(t, 3, fetcher.calls)
}

func TestPageIterator_HasNextDrivesFetching(t *testing.T) {
	fetcher := newMockFetcher(3)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 2)

	assert.True(t, iterator.HasNext())

	item, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)

	assert.True(t, iterator.HasNext())
	// HasNext is idempotent between Next calls.
	assert.True(t, iterator.HasNext())

	item, err = iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", item.ID)

	assert.True(t, iterator.HasNext())

	item, err = iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "3", item.ID)

	assert.False(t, iterator.HasNext())
}

func TestPageIterator_StartPage(t *testing.T) {
	fetcher := newMockFetcher(25)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 2, 10)

	items, err := iterator.All()
	require.NoError(t, err)
	require.Len(t, items, 15)
	assert.Equal(t, "11", items[0].ID)
	assert.Equal(t, "25", items[14].ID)
	assert.Equal(t, 2, fetcher.calls)
}

// scriptedFetcher serves a fixed response per page number, so tests can
// model a collection whose totalCount drifts between fetches.
type scriptedFetcher struct {
	pages map[int]*atlas.Page[testResource]
	calls int
}

func (s *scriptedFetcher) FetchPage(_ context.Context, pageNum, _ int) (*atlas.Page[testResource], error) {
	s.calls++

	if page, ok := s.pages[pageNum]; ok {
		return page, nil
	}

	return &atlas.Page[testResource]{}, nil
}

func scriptedItems(ids ...string) []testResource {
	items := make([]testResource, 0, len(ids))
	for _, id := range ids {
		items = append(items, testResource{ID: id})
	}

	return items
}

// The remaining-pages bound re-reads totalCount from every response. A
// collection that shrinks mid-traversal stops as soon as the latest count
// claims satisfaction, even though the first response promised more.
func TestPageIterator_TotalCountShrinksMidTraversal(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[int]*atlas.Page[testResource]{
		1: {Results: scriptedItems("1", "2", "3", "4", "5", "6", "7", "8", "9", "10"), TotalCount: 25},
		2: {Results: scriptedItems("11", "12", "13", "14", "15", "16", "17", "18", "19", "20"), TotalCount: 15},
	}}

	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 10)

	items, err := iterator.All()
	require.NoError(t, err)

	// Page 2's count of 15 ends the traversal; page 3 is never requested.
	assert.Len(t, items, 20)
	assert.Equal(t, 2, fetcher.calls)
}

// A collection that grows just past a page boundary costs one extra
// near-empty fetch before the bound settles.
func TestPageIterator_TotalCountGrowsMidTraversal(t *testing.T) {
	fetcher := &scriptedFetcher{pages: map[int]*atlas.Page[testResource]{
		1: {Results: scriptedItems("1", "2", "3", "4", "5", "6", "7", "8", "9", "10"), TotalCount: 20},
		2: {Results: scriptedItems("11", "12", "13", "14", "15", "16", "17", "18", "19", "20"), TotalCount: 21},
		3: {Results: nil, TotalCount: 21},
	}}

	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 10)

	items, err := iterator.All()
	require.NoError(t, err)

	// The count of 21 after page 2 forces a third fetch that turns out
	// empty; the tolerance is the documented behavior.
	assert.Len(t, items, 20)
	assert.Equal(t, 3, fetcher.calls)
}

func TestPageIterator_ExhaustedMakesNoFurtherFetches(t *testing.T) {
	fetcher := newMockFetcher(5)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 10)

	items, err := iterator.All()
	require.NoError(t, err)
	require.Len(t, items, 5)

	fetchesAfterDrain := fetcher.calls

	assert.False(t, iterator.HasNext())

	_, err = iterator.Next()
	assert.ErrorIs(t, err, atlas.ErrNoMoreItems)

	_, err = iterator.Next()
	assert.ErrorIs(t, err, atlas.ErrNoMoreItems)

	assert.Equal(t, fetchesAfterDrain, fetcher.calls)
}

func TestPageIterator_FetchFailure(t *testing.T) {
	cause := errors.New("boom")
	fetcher := newMockFetcher(25)
	fetcher.failures[2] = cause

	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 10)

	// Page one is delivered intact.
	for i := 1; i <= 10; i++ {
		require.True(t, iterator.HasNext())

		item, err := iterator.Next()
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d", i), item.ID)
	}

	// The failure is an item of the traversal, surfaced exactly once.
	require.True(t, iterator.HasNext())

	_, err := iterator.Next()
	require.Error(t, err)

	var pageErr *atlas.PaginationError
	require.ErrorAs(t, err, &pageErr)
	assert.Equal(t, 2, pageErr.PageNum)
	assert.ErrorIs(t, err, cause)

	// Afterwards the iterator is terminal and fetches nothing more.
	fetchesAfterFailure := fetcher.calls

	assert.False(t, iterator.HasNext())

	_, err = iterator.Next()
	assert.ErrorIs(t, err, atlas.ErrNoMoreItems)
	assert.Equal(t, fetchesAfterFailure, fetcher.calls)
}

func TestPageIterator_AllStopsOnFailure(t *testing.T) {
	cause := errors.New("boom")
	fetcher := newMockFetcher(25)
	fetcher.failures[2] = cause

	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 10)

	items, err := iterator.All()
	require.Error(t, err)
	assert.Nil(t, items)

	var pageErr *atlas.PaginationError
	assert.ErrorAs(t, err, &pageErr)
}

func TestPageIterator_ForEach(t *testing.T) {
	fetcher := newMockFetcher(7)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 3)

	var seen []string

	err := iterator.ForEach(func(item testResource) error {
		seen = append(seen, item.ID)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, seen)
}

func TestPageIterator_ForEachStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	fetcher := newMockFetcher(7)
	iterator := atlas.NewPageIterator[testResource](context.Background(), fetcher, 1, 3)

	var seen int

	err := iterator.ForEach(func(testResource) error {
		seen++
		if seen == 4 {
			return stop
		}

		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 4, seen)
}

func TestPageFetcherFunc(t *testing.T) {
	var gotPage, gotSize int

	fetcher := atlas.PageFetcherFunc[testResource](func(_ context.Context, pageNum, itemsPerPage int) (*atlas.Page[testResource], error) {
		gotPage, gotSize = pageNum, itemsPerPage

		return &atlas.Page[testResource]{TotalCount: 0}, nil
	})

	_, err := fetcher.FetchPage(context.Background(), 4, 50)
	require.NoError(t, err)
	assert.Equal(t, 4, gotPage)
	assert.Equal(t, 50, gotSize)
}

func TestCheckPaginationLimits(t *testing.T) {
	tests := []struct {
		name         string
		pageNum      int
		itemsPerPage int
		wantErr      bool
	}{
		{name: "defaults", pageNum: 1, itemsPerPage: 100, wantErr: false},
		{name: "min page size", pageNum: 1, itemsPerPage: 1, wantErr: false},
		{name: "max page size", pageNum: 1, itemsPerPage: 500, wantErr: false},
		{name: "zero page", pageNum: 0, itemsPerPage: 100, wantErr: true},
		{name: "negative page", pageNum: -1, itemsPerPage: 100, wantErr: true},
		{name: "zero page size", pageNum: 1, itemsPerPage: 0, wantErr: true},
		{name: "oversized page", pageNum: 1, itemsPerPage: 501, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := atlas.CheckPaginationLimits(tt.pageNum, tt.itemsPerPage)

			if tt.wantErr {
				var limitsErr *atlas.PaginationLimitsError
				require.ErrorAs(t, err, &limitsErr)
				assert.Equal(t, tt.pageNum, limitsErr.PageNum)
				assert.Equal(t, tt.itemsPerPage, limitsErr.ItemsPerPage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListOptions_Resolve(t *testing.T) {
	var nilOpts *atlas.ListOptions

	pageNum, itemsPerPage := nilOpts.Resolve()
	assert.Equal(t, atlas.DefaultPageNum, pageNum)
	assert.Equal(t, atlas.DefaultItemsPerPage, itemsPerPage)

	pageNum, itemsPerPage = (&atlas.ListOptions{}).Resolve()
	assert.Equal(t, atlas.DefaultPageNum, pageNum)
	assert.Equal(t, atlas.DefaultItemsPerPage, itemsPerPage)

	pageNum, itemsPerPage = (&atlas.ListOptions{PageNum: 3}).Resolve()
	assert.Equal(t, 3, pageNum)
	assert.Equal(t, atlas.DefaultItemsPerPage, itemsPerPage)

	pageNum, itemsPerPage = (&atlas.ListOptions{PageNum: 2, ItemsPerPage: 50}).Resolve()
	assert.Equal(t, 2, pageNum)
	assert.Equal(t, 50, itemsPerPage)

	pageNum, itemsPerPage = atlas.NewListOptions().Resolve()
	assert.Equal(t, atlas.DefaultPageNum, pageNum)
	assert.Equal(t, atlas.DefaultItemsPerPage, itemsPerPage)
}
