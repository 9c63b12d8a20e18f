package atlas

import (
	"context"
)

// Pagination defaults and bounds applied to every list endpoint.
const (
	// DefaultPageNum is the page number used when the caller does not pick one.
	DefaultPageNum = 1

	// DefaultItemsPerPage is the page size used when the caller does not pick one.
	DefaultItemsPerPage = 100

	// MinItemsPerPage is the smallest page size the API accepts.
	MinItemsPerPage = 1

	// MaxItemsPerPage is the largest page size the API accepts.
	MaxItemsPerPage = 500
)

// CheckPaginationLimits validates a page request before any network call.
// It returns a *PaginationLimitsError when pageNum is not positive or
// itemsPerPage falls outside [MinItemsPerPage, MaxItemsPerPage].
func CheckPaginationLimits(pageNum, itemsPerPage int) error {
	if pageNum < 1 || itemsPerPage < MinItemsPerPage || itemsPerPage > MaxItemsPerPage {
		return &PaginationLimitsError{
			PageNum:      pageNum,
			ItemsPerPage: itemsPerPage,
			Min:          MinItemsPerPage,
			Max:          MaxItemsPerPage,
		}
	}

	return nil
}

// ListOptions selects the starting page and page size of a list operation.
// A nil ListOptions means the defaults.
type ListOptions struct {
	PageNum      int
	ItemsPerPage int
}

// NewListOptions returns options populated with the defaults.
func NewListOptions() *ListOptions {
	return &ListOptions{
		PageNum:      DefaultPageNum,
		ItemsPerPage: DefaultItemsPerPage,
	}
}

// Resolve returns the effective page number and page size, applying defaults
// for unset fields. It is nil-safe.
func (o *ListOptions) Resolve() (int, int) {
	pageNum, itemsPerPage := DefaultPageNum, DefaultItemsPerPage

	if o != nil {
		if o.PageNum != 0 {
			pageNum = o.PageNum
		}

		if o.ItemsPerPage != 0 {
			itemsPerPage = o.ItemsPerPage
		}
	}

	return pageNum, itemsPerPage
}

// PageFetcher fetches one page of a list endpoint. Each resource family
// supplies its own implementation; the alerts binding additionally carries
// the bound status filter.
type PageFetcher[T any] interface {
	FetchPage(ctx context.Context, pageNum, itemsPerPage int) (*Page[T], error)
}

// PageFetcherFunc adapts a plain function to the PageFetcher interface.
type PageFetcherFunc[T any] func(ctx context.Context, pageNum, itemsPerPage int) (*Page[T], error)

// FetchPage implements PageFetcher.
func (f PageFetcherFunc[T]) FetchPage(ctx context.Context, pageNum, itemsPerPage int) (*Page[T], error) {
	return f(ctx, pageNum, itemsPerPage)
}

// PageIterator walks a paginated list endpoint lazily, fetching the next page
// exactly when the current one is exhausted. It owns its cursor exclusively
// and is not safe for concurrent use. A finished or failed iterator yields
// nothing further; construct a new one to traverse again.
type PageIterator[T any] struct {
	ctx          context.Context
	fetcher      PageFetcher[T]
	pageNum      int
	itemsPerPage int
	total        int
	buffer       []T
	index        int
	pending      *PaginationError
	done         bool
}

// NewPageIterator creates an iterator over the given page fetcher, starting
// at pageNum with itemsPerPage results per page. Limits are expected to have
// been validated by the list operation handing out the iterator.
func NewPageIterator[T any](ctx context.Context, fetcher PageFetcher[T], pageNum, itemsPerPage int) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:          ctx,
		fetcher:      fetcher,
		pageNum:      pageNum,
		itemsPerPage: itemsPerPage,
		// Seed total so the first remaining-pages check passes; every fetch
		// overwrites it with the authoritative totalCount.
		total: pageNum * itemsPerPage,
	}
}

// HasNext reports whether Next will produce another item or a pending fetch
// failure. It fetches pages as needed to find out.
func (it *PageIterator[T]) HasNext() bool {
	if it.pending != nil {
		return true
	}

	if it.done {
		return false
	}

	for it.index >= len(it.buffer) {
		if !it.morePages() {
			it.done = true

			return false
		}

		if !it.fetch() {
			return true
		}
	}

	return true
}

// Next returns the next item of the traversal. After the last item it
// returns ErrNoMoreItems; after a fetch failure it returns the
// *PaginationError once, then ErrNoMoreItems.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.pending != nil {
		err := it.pending
		it.pending = nil
		it.done = true

		return zero, err
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the traversal and returns every remaining item.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to every remaining item, stopping at the first error
// from fn or from the traversal itself.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// morePages applies the loose remaining-pages bound: keep fetching while the
// page about to be requested could still hold unseen results. totalCount is
// re-read on every fetch, so a collection that shrinks or grows mid-traversal
// can cost one extra near-empty fetch or stop a page early at the boundary.
// That tolerance is intentional; do not tighten it into an exact page count.
func (it *PageIterator[T]) morePages() bool {
	return it.pageNum*it.itemsPerPage-it.total < it.itemsPerPage
}

// fetch pulls the next page into the buffer, reporting false when the fetch
// failed and the failure is pending for Next.
func (it *PageIterator[T]) fetch() bool {
	page, err := it.fetcher.FetchPage(it.ctx, it.pageNum, it.itemsPerPage)
	if err != nil {
		it.pending = &PaginationError{PageNum: it.pageNum, cause: err}

		return false
	}

	it.total = page.TotalCount
	it.buffer = page.Results
	it.index = 0
	it.pageNum++

	return true
}
