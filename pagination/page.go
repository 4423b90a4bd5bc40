package pagination

import (
	"context"

	"github.com/openweb3-io/chaindata/types"
)

// FetchResult is one page of items plus the uniform next-page options. A nil
// NextPageKeys means the backend reported no further pages.
type FetchResult[T any] struct {
	Items        []T
	NextPageKeys *PageOptions
}

// Fetcher performs the network call for one page and translates the
// backend's native pagination signal (a forward URL, a marker, a page key,
// or a page-number/ascending pair) into uniform PageOptions. One
// implementation exists per ecosystem; TransactionsPage never parses
// ecosystem-specific URLs itself.
type Fetcher[T any] interface {
	FetchPage(ctx context.Context, chain types.Chain, address types.Address, opts PageOptions) (*FetchResult[T], error)
}

// CursorInfo is a read-only snapshot of the page's navigation state. Empty
// cursor strings mean the corresponding navigation is unavailable.
type CursorInfo struct {
	HasNextPage     bool   `json:"hasNextPage" yaml:"has_next_page"`
	HasPreviousPage bool   `json:"hasPreviousPage" yaml:"has_previous_page"`
	NextCursor      string `json:"nextCursor,omitempty" yaml:"next_cursor,omitempty"`
	PreviousCursor  string `json:"previousCursor,omitempty" yaml:"previous_cursor,omitempty"`
}

// TransactionsPage is the stateful, per-session pagination handle. It owns
// the currently loaded page's items and replays recorded PageOptions to
// navigate backward, since every backend is forward-only.
//
// A TransactionsPage is not safe for concurrent navigation: Next, Previous
// and the iterator read-modify-write the same fields without mutual
// exclusion. Callers must serialize navigation on a given instance;
// independent instances share no mutable state. Cursor tokens are immutable
// values and safe to pass between processes or instances.
type TransactionsPage[T any] struct {
	fetcher Fetcher[T]
	chain   types.Chain
	address types.Address

	transactions    []T
	currentPageKeys PageOptions
	nextPageKeys    *PageOptions
	history         *History
}

// FetchFirst fetches the first page of a new session. maxHistory bounds the
// retained backward depth; non-positive means DefaultMaxNavigationHistory.
func FetchFirst[T any](ctx context.Context, fetcher Fetcher[T], chain types.Chain, address types.Address, opts PageOptions, maxHistory int) (*TransactionsPage[T], error) {
	res, err := fetcher.FetchPage(ctx, chain, address, opts)
	if err != nil {
		return nil, err
	}
	page := &TransactionsPage[T]{
		fetcher:         fetcher,
		chain:           chain,
		address:         address,
		transactions:    res.Items,
		currentPageKeys: opts,
		nextPageKeys:    res.NextPageKeys,
		history:         NewHistory(maxHistory),
	}
	page.history.Append(opts)
	return page, nil
}

// FromCursor resumes a session from a cursor token, possibly in a new
// process. The cursor is decoded before any network call; the embedded page
// is re-fetched and the navigation history reconstructed from the cursor's
// metadata, so subsequent Previous calls behave as if the session had
// continued uninterrupted within the retained window.
func FromCursor[T any](ctx context.Context, fetcher Fetcher[T], chain types.Chain, address types.Address, token string, maxHistory int) (*TransactionsPage[T], error) {
	data, err := DecodeCursor(token)
	if err != nil {
		return nil, err
	}
	res, err := fetcher.FetchPage(ctx, chain, address, data.PageOptions)
	if err != nil {
		return nil, err
	}
	var history *History
	if data.CursorMeta != nil {
		history = RestoreHistory(data.CursorMeta.NavigationHistory, data.CursorMeta.HistoryStartIndex, maxHistory)
	} else {
		history = NewHistory(maxHistory)
	}
	history.Append(data.PageOptions)
	return &TransactionsPage[T]{
		fetcher:         fetcher,
		chain:           chain,
		address:         address,
		transactions:    res.Items,
		currentPageKeys: data.PageOptions,
		nextPageKeys:    res.NextPageKeys,
		history:         history,
	}, nil
}

// Transactions returns the items of the currently loaded page. No network
// effect. An empty slice is a valid page with zero matching items, distinct
// from "no next page".
func (p *TransactionsPage[T]) Transactions() []T {
	return p.transactions
}

// CurrentPageKeys returns the options that produced the current page.
func (p *TransactionsPage[T]) CurrentPageKeys() PageOptions {
	return p.currentPageKeys
}

// NextPageKeys returns the options for the next page, or nil when the
// session is at the last page.
func (p *TransactionsPage[T]) NextPageKeys() *PageOptions {
	return p.nextPageKeys
}

func (p *TransactionsPage[T]) HasNext() bool {
	return p.nextPageKeys != nil
}

// HasPrevious reports whether a previous page is retrievable. It reflects
// only what the retained history window can replay: after deep forward
// navigation the oldest pages fall out of the window and stop being
// reachable.
func (p *TransactionsPage[T]) HasPrevious() bool {
	return p.history.CanGoBack()
}

// Next advances to the next page. It returns false with no side effects when
// there is no next page; the fetcher is not invoked. On fetch failure the
// page's loaded data and position are left untouched.
func (p *TransactionsPage[T]) Next(ctx context.Context) (bool, error) {
	if p.nextPageKeys == nil {
		return false, nil
	}
	opts := *p.nextPageKeys
	res, err := p.fetcher.FetchPage(ctx, p.chain, p.address, opts)
	if err != nil {
		return false, err
	}
	p.transactions = res.Items
	p.currentPageKeys = opts
	p.nextPageKeys = res.NextPageKeys
	p.history.Append(opts)
	return true, nil
}

// Previous navigates one page back by replaying the recorded options of the
// prior page. It returns false with no side effects when HasPrevious is
// false. On fetch failure the page's loaded data and position are left
// untouched.
func (p *TransactionsPage[T]) Previous(ctx context.Context) (bool, error) {
	if !p.history.CanGoBack() {
		return false, nil
	}
	opts, err := p.history.PeekBack()
	if err != nil {
		// CanGoBack and PeekBack agree by construction.
		return false, err
	}
	res, err := p.fetcher.FetchPage(ctx, p.chain, p.address, opts)
	if err != nil {
		return false, err
	}
	_, _ = p.history.StepBack()
	p.transactions = res.Items
	p.currentPageKeys = opts
	p.nextPageKeys = res.NextPageKeys
	return true, nil
}

// CursorInfo returns a read-only snapshot of the navigation state with
// resumable cursor tokens where available.
func (p *TransactionsPage[T]) CursorInfo() *CursorInfo {
	info := &CursorInfo{
		HasNextPage:     p.HasNext(),
		HasPreviousPage: p.HasPrevious(),
	}
	if token, ok := p.NextCursor(); ok {
		info.NextCursor = token
	}
	if token, ok := p.PreviousCursor(); ok {
		info.PreviousCursor = token
	}
	return info
}

// NextCursor returns a token that resumes the session at the next page, with
// the current page reachable via Previous. ok is false at the last page.
func (p *TransactionsPage[T]) NextCursor() (string, bool) {
	if p.nextPageKeys == nil {
		return "", false
	}
	// Only the entries through the current position; after backward
	// navigation the forward tail describes pages ahead of the cursor's
	// page, not behind it.
	entries := p.history.EntriesThroughCurrent()
	startIndex := p.history.StartIndex()
	current := p.currentPageKeys
	meta := &CursorMeta{
		CurrentPageIndex:    len(entries),
		NavigationHistory:   entries,
		CanGoBack:           len(entries) > 0 || startIndex > 0,
		CanGoForward:        true,
		PreviousPageOptions: &current,
		// The page after the next one is unknown until fetched.
		NextPageOptions:   nil,
		OriginalPageIndex: startIndex + len(entries),
		HistoryStartIndex: startIndex,
	}
	token, err := EncodeCursor(&EnhancedCursorData{PageOptions: *p.nextPageKeys, CursorMeta: meta})
	if err != nil {
		return "", false
	}
	return token, true
}

// PreviousCursor returns a token that re-loads the current page with the
// backward window positioned one step earlier, so a stateless consumer can
// serve "previous" by resuming from it and calling Previous. ok is false
// when HasPrevious is false.
func (p *TransactionsPage[T]) PreviousCursor() (string, bool) {
	if !p.history.CanGoBack() {
		return "", false
	}
	entries := p.history.EntriesBeforeCurrent()
	startIndex := p.history.StartIndex()
	var prev *PageOptions
	if len(entries) > 0 {
		last := entries[len(entries)-1]
		prev = &last
	}
	meta := &CursorMeta{
		CurrentPageIndex:    len(entries),
		NavigationHistory:   entries,
		CanGoBack:           len(entries) > 0 || startIndex > 0,
		CanGoForward:        p.nextPageKeys != nil,
		PreviousPageOptions: prev,
		NextPageOptions:     p.nextPageKeys,
		OriginalPageIndex:   startIndex + len(entries),
		HistoryStartIndex:   startIndex,
	}
	token, err := EncodeCursor(&EnhancedCursorData{PageOptions: p.currentPageKeys, CursorMeta: meta})
	if err != nil {
		return "", false
	}
	return token, true
}
