package testutil

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/openweb3-io/chaindata/pagination"
	"github.com/openweb3-io/chaindata/types"
)

// MockFetcher serves a fixed, stable sequence of pages without touching the
// network. Forward navigation is signalled the way real backends do it: each
// page's NextPageKeys carries an opaque page key for the following page.
type MockFetcher struct {
	Pages [][]types.Transaction

	// Calls counts every FetchPage invocation, including failed ones.
	Calls int
	// Err, when set, fails the next FetchPage call and is then cleared.
	Err error
	// LastOptions records the options of the most recent call.
	LastOptions pagination.PageOptions
}

var _ pagination.Fetcher[types.Transaction] = &MockFetcher{}

func (f *MockFetcher) FetchPage(_ context.Context, _ types.Chain, _ types.Address, opts pagination.PageOptions) (*pagination.FetchResult[types.Transaction], error) {
	f.Calls++
	f.LastOptions = opts
	if f.Err != nil {
		err := f.Err
		f.Err = nil
		return nil, err
	}
	index := 0
	if opts.PageKey != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(opts.PageKey, "page-"))
		if err != nil {
			return nil, errors.Wrapf(err, "unknown page key %q", opts.PageKey)
		}
		index = n
	}
	if index < 0 || index >= len(f.Pages) {
		return nil, errors.Errorf("no page %d", index)
	}
	res := &pagination.FetchResult[types.Transaction]{Items: f.Pages[index]}
	if index+1 < len(f.Pages) {
		next := opts
		next.PageKey = fmt.Sprintf("page-%d", index+1)
		res.NextPageKeys = &next
	}
	return res, nil
}

// MakeTransactions builds n opaque transactions with deterministic hashes.
func MakeTransactions(prefix string, n int) []types.Transaction {
	txs := make([]types.Transaction, n)
	for i := range txs {
		txs[i] = types.Transaction{
			TxHash:      types.TxHash(fmt.Sprintf("%s-%d", prefix, i)),
			BlockNumber: int64(1000 + i),
		}
	}
	return txs
}

// MakePages builds pageCount pages of pageSize transactions each.
func MakePages(pageCount, pageSize int) [][]types.Transaction {
	pages := make([][]types.Transaction, pageCount)
	for i := range pages {
		pages[i] = MakeTransactions(fmt.Sprintf("tx-p%d", i), pageSize)
	}
	return pages
}
