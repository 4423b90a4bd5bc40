package tvm

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fbsobreira/gotron-sdk/pkg/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/pagination"
	"github.com/openweb3-io/chaindata/types"
)

// Client is the TVM-ecosystem surface of the hosted API. Like EVM, TVM
// backends page with a native forward URL normalized into PageOptions.
type Client struct {
	api *client.Client

	MaxNavigationHistory int
}

var _ pagination.Fetcher[types.Transaction] = &Client{}

func NewClient(api *client.Client) *Client {
	return &Client{api: api}
}

type transactionsResponse struct {
	Items       []types.Transaction `json:"items"`
	PageSize    int                 `json:"pageSize"`
	HasNextPage bool                `json:"hasNextPage"`
	NextPageUrl string              `json:"nextPageUrl"`
}

func validateAddress(address types.Address) error {
	// Tron base58check, 0x41-prefixed 21 bytes.
	raw, err := common.DecodeCheck(string(address))
	if err != nil {
		return types.WrapErr(types.ErrInvalidAddress, err)
	}
	if len(raw) != 21 || raw[0] != 0x41 {
		return types.WrapErr(types.ErrInvalidAddress, fmt.Errorf("not a tron address: %s", address))
	}
	return nil
}

func validateChain(chain types.Chain) error {
	if chain.Ecosystem() != types.EcosystemTVM {
		return types.WrapErr(types.ErrUnsupportedChain, fmt.Errorf("%s is not a tvm chain", chain))
	}
	return nil
}

// FetchPage implements pagination.Fetcher.
func (c *Client) FetchPage(ctx context.Context, chain types.Chain, address types.Address, opts pagination.PageOptions) (*pagination.FetchResult[types.Transaction], error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tvm/%s/txs/%s", chain, address)
	if q := opts.ToQuery().Encode(); q != "" {
		path = path + "?" + q
	}
	var res transactionsResponse
	if err := c.api.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	result := &pagination.FetchResult[types.Transaction]{Items: res.Items}
	if res.HasNextPage && res.NextPageUrl != "" {
		u, err := url.Parse(res.NextPageUrl)
		if err != nil {
			return nil, errors.Wrap(err, "malformed nextPageUrl")
		}
		next, err := pagination.FromQuery(u.Query())
		if err != nil {
			return nil, errors.Wrap(err, "malformed nextPageUrl query")
		}
		zap.S().Debugw("normalized tvm next page", "chain", chain, "endTimestamp", next.EndTimestamp)
		result.NextPageKeys = &next
	}
	return result, nil
}

func (c *Client) Transactions(ctx context.Context, chain types.Chain, address types.Address, options ...pagination.Option) (*pagination.TransactionsPage[types.Transaction], error) {
	opts, err := pagination.NewPageOptions(options...)
	if err != nil {
		return nil, err
	}
	return pagination.FetchFirst[types.Transaction](ctx, c, chain, address, opts, c.MaxNavigationHistory)
}

func (c *Client) TransactionsFromCursor(ctx context.Context, chain types.Chain, address types.Address, token string) (*pagination.TransactionsPage[types.Transaction], error) {
	return pagination.FromCursor[types.Transaction](ctx, c, chain, address, token, c.MaxNavigationHistory)
}

func (c *Client) Transaction(ctx context.Context, chain types.Chain, hash types.TxHash) (*types.Transaction, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	var tx types.Transaction
	if err := c.api.Get(ctx, fmt.Sprintf("/tvm/%s/tx/%s", chain, hash), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) Balances(ctx context.Context, chain types.Chain, address types.Address) (*client.BalanceSheet, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	return c.api.FetchBalances(ctx, types.EcosystemTVM, chain, address)
}
