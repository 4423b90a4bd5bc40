package pagination

import "context"

// Iter walks every item of the page and all pages after it, fetching the
// next page whenever the current one is exhausted. The sequence is finite,
// bounded by the total matching transactions.
//
// An Iter shares the page's mutable position: iterating consumes the page,
// and a finished iterator cannot be restarted. Request a fresh first page to
// iterate again from the start.
//
//	it := page.Iter()
//	for it.Next(ctx) {
//		handle(it.Item())
//	}
//	if err := it.Err(); err != nil { ... }
type Iter[T any] struct {
	page *TransactionsPage[T]
	idx  int
	item T
	err  error
	done bool
}

// Iter returns an iterator over the remaining items, starting at the first
// item of the currently loaded page.
func (p *TransactionsPage[T]) Iter() *Iter[T] {
	return &Iter[T]{page: p}
}

// Next advances to the next item, fetching further pages as needed. It
// returns false when the sequence is exhausted or a fetch failed; Err
// distinguishes the two.
func (it *Iter[T]) Next(ctx context.Context) bool {
	if it.done || it.err != nil {
		return false
	}
	// Pages may legitimately be empty; keep fetching until an item or the
	// terminal page shows up.
	for it.idx >= len(it.page.transactions) {
		ok, err := it.page.Next(ctx)
		if err != nil {
			it.err = err
			return false
		}
		if !ok {
			it.done = true
			return false
		}
		it.idx = 0
	}
	it.item = it.page.transactions[it.idx]
	it.idx++
	return true
}

// Item returns the item produced by the last successful Next.
func (it *Iter[T]) Item() T {
	return it.item
}

// Err returns the fetch error that stopped iteration, if any.
func (it *Iter[T]) Err() error {
	return it.err
}
