package pagination_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/openweb3-io/chaindata/pagination"
	"github.com/openweb3-io/chaindata/testutil"
	"github.com/openweb3-io/chaindata/types"
)

const (
	testChain   = types.ETH
	testAddress = types.Address("0x28c6c06298d514db089934071355e5743bf21d60")
)

func firstPage(t *testing.T, fetcher *testutil.MockFetcher, opts pagination.PageOptions) *pagination.TransactionsPage[types.Transaction] {
	t.Helper()
	page, err := pagination.FetchFirst(context.Background(), fetcher, testChain, testAddress, opts, 0)
	require.NoError(t, err)
	return page
}

func TestTerminalSemantics(t *testing.T) {
	// A single-page result: no next page, and Next must not invoke the
	// fetcher again.
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(1, 3)}
	page := firstPage(t, fetcher, pagination.PageOptions{PageSize: 3})

	require.False(t, page.HasNext())
	require.Nil(t, page.NextPageKeys())
	require.Equal(t, 1, fetcher.Calls)

	ok, err := page.Next(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, fetcher.Calls)
	require.Len(t, page.Transactions(), 3)
}

func TestEmptyPageIsNotTerminal(t *testing.T) {
	// Zero matching items is a valid page, distinct from "no next page".
	fetcher := &testutil.MockFetcher{Pages: [][]types.Transaction{
		{},
		testutil.MakeTransactions("late", 2),
	}}
	page := firstPage(t, fetcher, pagination.PageOptions{})

	require.Empty(t, page.Transactions())
	require.True(t, page.HasNext())

	ok, err := page.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, page.Transactions(), 2)
}

func TestScenarioNextThenPrevious(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(3, 5)}
	page := firstPage(t, fetcher, pagination.PageOptions{PageSize: 5})

	require.Len(t, page.Transactions(), 5)
	require.True(t, page.HasNext())
	require.False(t, page.HasPrevious())
	firstItems := page.Transactions()

	ok, err := page.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, page.Transactions(), 5)
	require.True(t, page.HasPrevious())
	secondItems := page.Transactions()
	require.NotEqual(t, firstItems, secondItems)

	// Forward/back symmetry: previous() restores the original item set by
	// replaying the recorded options.
	ok, err = page.Previous(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, firstItems, page.Transactions())
	require.False(t, page.HasPrevious())
	require.True(t, page.HasNext())

	// And forward again lands back on page two.
	ok, err = page.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, secondItems, page.Transactions())
}

func TestPreviousAtFirstPageIsNoop(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(2, 2)}
	page := firstPage(t, fetcher, pagination.PageOptions{})

	ok, err := page.Previous(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, fetcher.Calls)
}

func TestFetchFailureLeavesStateUntouched(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(3, 2)}
	page := firstPage(t, fetcher, pagination.PageOptions{})
	before := page.Transactions()
	beforeKeys := page.CurrentPageKeys()

	fetcher.Err = errors.New("upstream 503")
	ok, err := page.Next(context.Background())
	require.Error(t, err)
	require.False(t, ok)

	// The attempted transition did not commit.
	require.Equal(t, before, page.Transactions())
	require.Equal(t, beforeKeys, page.CurrentPageKeys())
	require.True(t, page.HasNext())
	require.False(t, page.HasPrevious())

	// The instance stays usable after the failure.
	ok, err = page.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, page.HasPrevious())
}

func TestPreviousFetchFailureLeavesStateUntouched(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(3, 2)}
	page := firstPage(t, fetcher, pagination.PageOptions{})
	_, err := page.Next(context.Background())
	require.NoError(t, err)
	secondItems := page.Transactions()

	fetcher.Err = errors.New("upstream 503")
	ok, err := page.Previous(context.Background())
	require.Error(t, err)
	require.False(t, ok)
	require.Equal(t, secondItems, page.Transactions())
	require.True(t, page.HasPrevious())
}

func TestDeepBackwardNavigationBoundedByWindow(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(8, 1)}
	page, err := pagination.FetchFirst(context.Background(), fetcher, testChain, testAddress, pagination.PageOptions{}, 3)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		ok, err := page.Next(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.False(t, page.HasNext())

	// Window of 3 retains two steps back from the current page.
	for i := 0; i < 2; i++ {
		ok, err := page.Previous(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.False(t, page.HasPrevious())
	ok, err := page.Previous(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCursorInfoSnapshot(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(3, 2)}
	page := firstPage(t, fetcher, pagination.PageOptions{PageSize: 2})

	info := page.CursorInfo()
	require.True(t, info.HasNextPage)
	require.False(t, info.HasPreviousPage)
	require.NotEmpty(t, info.NextCursor)
	require.Empty(t, info.PreviousCursor)

	_, err := page.Next(context.Background())
	require.NoError(t, err)
	info = page.CursorInfo()
	require.True(t, info.HasNextPage)
	require.True(t, info.HasPreviousPage)
	require.NotEmpty(t, info.NextCursor)
	require.NotEmpty(t, info.PreviousCursor)
}

func TestNextCursorResumesWithBackwardWindow(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(3, 2)}
	page := firstPage(t, fetcher, pagination.PageOptions{PageSize: 2})
	firstItems := page.Transactions()

	token, ok := page.NextCursor()
	require.True(t, ok)

	// A brand-new process resumes at page two with page one reachable.
	resumedFetcher := &testutil.MockFetcher{Pages: fetcher.Pages}
	resumed, err := pagination.FromCursor(context.Background(), resumedFetcher, testChain, testAddress, token, 0)
	require.NoError(t, err)
	require.Equal(t, fetcher.Pages[1], resumed.Transactions())
	require.True(t, resumed.HasPrevious())
	require.True(t, resumed.HasNext())

	ok, err = resumed.Previous(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, firstItems, resumed.Transactions())
}

func TestNextCursorAfterPreviousDropsForwardTail(t *testing.T) {
	// Navigate p0 -> p1 -> p2, step back to p1, then mint a next-cursor.
	// The cursor points at p2 again, and its retained window must stop at
	// the current position: a resumed session's first Previous lands on
	// p1, not on a stale copy of p2.
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(3, 2)}
	page := firstPage(t, fetcher, pagination.PageOptions{PageSize: 2})
	for i := 0; i < 2; i++ {
		ok, err := page.Next(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := page.Previous(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, fetcher.Pages[1], page.Transactions())

	token, ok := page.NextCursor()
	require.True(t, ok)

	resumed, err := pagination.FromCursor(context.Background(), &testutil.MockFetcher{Pages: fetcher.Pages}, testChain, testAddress, token, 0)
	require.NoError(t, err)
	require.Equal(t, fetcher.Pages[2], resumed.Transactions())

	ok, err = resumed.Previous(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, fetcher.Pages[1], resumed.Transactions())

	ok, err = resumed.Previous(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, fetcher.Pages[0], resumed.Transactions())
	require.False(t, resumed.HasPrevious())
}

func TestPreviousCursorReloadsCurrentPage(t *testing.T) {
	// Scenario B: the previous-cursor of page two re-fetches page two with
	// HasPrevious still true, so a stateless consumer resumes and then
	// steps back.
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(3, 5)}
	page := firstPage(t, fetcher, pagination.PageOptions{PageSize: 5})
	_, err := page.Next(context.Background())
	require.NoError(t, err)
	pageTwoItems := page.Transactions()

	token, ok := page.PreviousCursor()
	require.True(t, ok)

	resumed, err := pagination.FromCursor(context.Background(), &testutil.MockFetcher{Pages: fetcher.Pages}, testChain, testAddress, token, 0)
	require.NoError(t, err)
	require.Equal(t, pageTwoItems, resumed.Transactions())
	require.True(t, resumed.HasPrevious())
}

func TestCursorMetaCanGoForward(t *testing.T) {
	// Scenario C: canGoForward in the encoded metadata matches whether the
	// source page had a next page at encode time.
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(2, 1)}
	page := firstPage(t, fetcher, pagination.PageOptions{})

	token, ok := page.NextCursor()
	require.True(t, ok)
	decoded, err := pagination.DecodeCursor(token)
	require.NoError(t, err)
	require.NotNil(t, decoded.CursorMeta)
	require.True(t, decoded.CursorMeta.CanGoForward)
	require.Equal(t, []pagination.PageOptions{page.CurrentPageKeys()}, decoded.CursorMeta.NavigationHistory)

	// Advance to the terminal page: no next cursor exists there.
	_, err = page.Next(context.Background())
	require.NoError(t, err)
	_, ok = page.NextCursor()
	require.False(t, ok)

	token, ok = page.PreviousCursor()
	require.True(t, ok)
	decoded, err = pagination.DecodeCursor(token)
	require.NoError(t, err)
	require.False(t, decoded.CursorMeta.CanGoForward)
}

func TestFromCursorWithoutMetaIsForwardOnly(t *testing.T) {
	token, err := pagination.EncodeCursor(&pagination.EnhancedCursorData{
		PageOptions: pagination.PageOptions{PageKey: "page-1"},
	})
	require.NoError(t, err)

	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(3, 2)}
	page, err := pagination.FromCursor(context.Background(), fetcher, testChain, testAddress, token, 0)
	require.NoError(t, err)
	require.Equal(t, fetcher.Pages[1], page.Transactions())
	require.False(t, page.HasPrevious())
	require.True(t, page.HasNext())
}

func TestFromCursorInvalidTokenFailsBeforeFetch(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(1, 1)}
	_, err := pagination.FromCursor(context.Background(), fetcher, testChain, testAddress, "%%%", 0)
	require.ErrorIs(t, err, pagination.ErrInvalidCursor)
	require.Equal(t, 0, fetcher.Calls)
}

func TestCursorSurvivesWindowTruncation(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(8, 1)}
	page, err := pagination.FetchFirst(context.Background(), fetcher, testChain, testAddress, pagination.PageOptions{}, 3)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		_, err := page.Next(context.Background())
		require.NoError(t, err)
	}

	token, ok := page.PreviousCursor()
	require.True(t, ok)
	decoded, err := pagination.DecodeCursor(token)
	require.NoError(t, err)
	// Absolute position is preserved even though the window slid.
	require.Equal(t, 7, decoded.CursorMeta.OriginalPageIndex)
	require.True(t, decoded.CursorMeta.HistoryStartIndex > 0)
	require.LessOrEqual(t, len(decoded.CursorMeta.NavigationHistory), 3)
}
