package pagination

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

type SortOrder string

const (
	SortAsc  = SortOrder("asc")
	SortDesc = SortOrder("desc")
)

// PageOptions is the full set of filter and paging parameters for one page
// request. It is an opaque bag from the page's point of view: the ecosystem
// fetcher decides which fields matter. Once a page has been fetched with a
// given PageOptions value, that value must not be mutated; backward
// navigation replays it verbatim.
//
// The marker, pageKey, pageNumber, ascending and ignoreTransactions fields
// are ecosystem-private: each backend's forward-only pagination signal is
// normalized into exactly one of them.
type PageOptions struct {
	PageSize             int       `json:"pageSize,omitempty"`
	StartBlock           *int64    `json:"startBlock,omitempty"`
	EndBlock             *int64    `json:"endBlock,omitempty"`
	StartTimestamp       *int64    `json:"startTimestamp,omitempty"`
	EndTimestamp         *int64    `json:"endTimestamp,omitempty"`
	Sort                 SortOrder `json:"sort,omitempty"`
	ViewAsAccountAddress string    `json:"viewAsAccountAddress,omitempty"`
	// V5Format selects the newer response envelope where supported.
	V5Format bool `json:"v5Format,omitempty"`

	Marker             string `json:"marker,omitempty"`
	PageKey            string `json:"pageKey,omitempty"`
	PageNumber         int    `json:"pageNumber,omitempty"`
	Ascending          *bool  `json:"ascending,omitempty"`
	IgnoreTransactions string `json:"ignoreTransactions,omitempty"`
}

// ToQuery serializes the options as URL query parameters, the way every
// backend accepts them.
func (opts PageOptions) ToQuery() url.Values {
	q := url.Values{}
	if opts.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(opts.PageSize))
	}
	if opts.StartBlock != nil {
		q.Set("startBlock", strconv.FormatInt(*opts.StartBlock, 10))
	}
	if opts.EndBlock != nil {
		q.Set("endBlock", strconv.FormatInt(*opts.EndBlock, 10))
	}
	if opts.StartTimestamp != nil {
		q.Set("startTimestamp", strconv.FormatInt(*opts.StartTimestamp, 10))
	}
	if opts.EndTimestamp != nil {
		q.Set("endTimestamp", strconv.FormatInt(*opts.EndTimestamp, 10))
	}
	if opts.Sort != "" {
		q.Set("sort", string(opts.Sort))
	}
	if opts.ViewAsAccountAddress != "" {
		q.Set("viewAsAccountAddress", opts.ViewAsAccountAddress)
	}
	if opts.V5Format {
		q.Set("v5Format", "true")
	}
	if opts.Marker != "" {
		q.Set("marker", opts.Marker)
	}
	if opts.PageKey != "" {
		q.Set("pageKey", opts.PageKey)
	}
	if opts.PageNumber > 0 {
		q.Set("pageNumber", strconv.Itoa(opts.PageNumber))
	}
	if opts.Ascending != nil {
		q.Set("ascending", strconv.FormatBool(*opts.Ascending))
	}
	if opts.IgnoreTransactions != "" {
		q.Set("ignoreTransactions", opts.IgnoreTransactions)
	}
	return q
}

// FromQuery parses URL query parameters back into PageOptions. Ecosystem
// fetchers use this to normalize a backend's native forward-URL into the
// uniform next-page options.
func FromQuery(q url.Values) (PageOptions, error) {
	opts := PageOptions{}
	var err error
	if v := q.Get("pageSize"); v != "" {
		opts.PageSize, err = strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(err, "invalid pageSize")
		}
	}
	for key, dst := range map[string]**int64{
		"startBlock":     &opts.StartBlock,
		"endBlock":       &opts.EndBlock,
		"startTimestamp": &opts.StartTimestamp,
		"endTimestamp":   &opts.EndTimestamp,
	} {
		if v := q.Get(key); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return opts, errors.Wrapf(err, "invalid %s", key)
			}
			*dst = &n
		}
	}
	if v := q.Get("sort"); v != "" {
		if v != string(SortAsc) && v != string(SortDesc) {
			return opts, errors.Errorf("invalid sort order: %s", v)
		}
		opts.Sort = SortOrder(v)
	}
	opts.ViewAsAccountAddress = q.Get("viewAsAccountAddress")
	opts.V5Format = q.Get("v5Format") == "true"
	opts.Marker = q.Get("marker")
	opts.PageKey = q.Get("pageKey")
	if v := q.Get("pageNumber"); v != "" {
		opts.PageNumber, err = strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(err, "invalid pageNumber")
		}
	}
	if v := q.Get("ascending"); v != "" {
		asc, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.Wrap(err, "invalid ascending flag")
		}
		opts.Ascending = &asc
	}
	opts.IgnoreTransactions = q.Get("ignoreTransactions")
	return opts, nil
}

// All possible page arguments go in here, privately available.
// The public Option closures select which arguments are set.
type pageOptions struct {
	pageSize             *int
	startBlock           *int64
	endBlock             *int64
	startTimestamp       *int64
	endTimestamp         *int64
	sort                 *SortOrder
	viewAsAccountAddress *string
	v5Format             *bool
}

func get[T any](arg *T) (T, bool) {
	if arg == nil {
		var zero T
		return zero, false
	}
	return *arg, true
}

type Option func(opts *pageOptions) error

func WithPageSize(size int) Option {
	return func(opts *pageOptions) error {
		if size <= 0 {
			return errors.Errorf("invalid page size: %d", size)
		}
		opts.pageSize = &size
		return nil
	}
}

func WithBlockRange(start, end int64) Option {
	return func(opts *pageOptions) error {
		if end > 0 && start > end {
			return errors.Errorf("invalid block range: %d > %d", start, end)
		}
		opts.startBlock = &start
		opts.endBlock = &end
		return nil
	}
}

func WithTimestampRange(start, end int64) Option {
	return func(opts *pageOptions) error {
		if end > 0 && start > end {
			return errors.Errorf("invalid timestamp range: %d > %d", start, end)
		}
		opts.startTimestamp = &start
		opts.endTimestamp = &end
		return nil
	}
}

func WithSort(order SortOrder) Option {
	return func(opts *pageOptions) error {
		if order != SortAsc && order != SortDesc {
			return errors.Errorf("invalid sort order: %s", order)
		}
		opts.sort = &order
		return nil
	}
}

// View transfer directions from the perspective of another account, e.g. the
// counterparty of a smart wallet.
func WithViewAsAccountAddress(address string) Option {
	return func(opts *pageOptions) error {
		opts.viewAsAccountAddress = &address
		return nil
	}
}

func WithV5Format() Option {
	return func(opts *pageOptions) error {
		v := true
		opts.v5Format = &v
		return nil
	}
}

// NewPageOptions builds the first-page PageOptions from caller options.
func NewPageOptions(options ...Option) (PageOptions, error) {
	bag := pageOptions{}
	for _, opt := range options {
		if err := opt(&bag); err != nil {
			return PageOptions{}, err
		}
	}
	opts := PageOptions{}
	if v, ok := get(bag.pageSize); ok {
		opts.PageSize = v
	}
	opts.StartBlock = bag.startBlock
	opts.EndBlock = bag.endBlock
	opts.StartTimestamp = bag.startTimestamp
	opts.EndTimestamp = bag.endTimestamp
	if v, ok := get(bag.sort); ok {
		opts.Sort = v
	}
	if v, ok := get(bag.viewAsAccountAddress); ok {
		opts.ViewAsAccountAddress = v
	}
	if v, ok := get(bag.v5Format); ok {
		opts.V5Format = v
	}
	return opts, nil
}
