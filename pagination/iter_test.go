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

func TestIterCompleteness(t *testing.T) {
	// Iterating to exhaustion yields the concatenation of every page, in
	// order, no duplicates, no omissions.
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(4, 3)}
	page := firstPage(t, fetcher, pagination.PageOptions{PageSize: 3})

	var want []types.Transaction
	for _, p := range fetcher.Pages {
		want = append(want, p...)
	}

	var got []types.Transaction
	it := page.Iter()
	for it.Next(context.Background()) {
		got = append(got, it.Item())
	}
	require.NoError(t, it.Err())
	require.Equal(t, want, got)
	// One fetch per page.
	require.Equal(t, 4, fetcher.Calls)
}

func TestIterSinglePage(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(1, 2)}
	page := firstPage(t, fetcher, pagination.PageOptions{})

	count := 0
	it := page.Iter()
	for it.Next(context.Background()) {
		count++
	}
	require.NoError(t, it.Err())
	require.Equal(t, 2, count)
}

func TestIterSkipsEmptyPages(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: [][]types.Transaction{
		testutil.MakeTransactions("a", 1),
		{},
		{},
		testutil.MakeTransactions("b", 1),
	}}
	page := firstPage(t, fetcher, pagination.PageOptions{})

	var hashes []types.TxHash
	it := page.Iter()
	for it.Next(context.Background()) {
		hashes = append(hashes, it.Item().TxHash)
	}
	require.NoError(t, it.Err())
	require.Equal(t, []types.TxHash{"a-0", "b-0"}, hashes)
}

func TestIterNotRestartable(t *testing.T) {
	// Iteration consumes the page's mutable position: a second iterator
	// starts where the first one left the page, at the terminal page.
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(2, 2)}
	page := firstPage(t, fetcher, pagination.PageOptions{})

	it := page.Iter()
	for it.Next(context.Background()) {
	}
	require.NoError(t, it.Err())

	again := page.Iter()
	count := 0
	for again.Next(context.Background()) {
		count++
	}
	// The second pass re-yields only the last loaded page's items.
	require.Equal(t, 2, count)
	require.False(t, page.HasNext())
}

func TestIterStopsOnFetchError(t *testing.T) {
	fetcher := &testutil.MockFetcher{Pages: testutil.MakePages(3, 1)}
	page := firstPage(t, fetcher, pagination.PageOptions{})

	it := page.Iter()
	require.True(t, it.Next(context.Background()))

	fetcher.Err = errors.New("upstream 500")
	require.False(t, it.Next(context.Background()))
	require.Error(t, it.Err())

	// A stopped iterator stays stopped.
	require.False(t, it.Next(context.Background()))
}
