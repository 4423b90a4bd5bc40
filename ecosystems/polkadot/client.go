package polkadot

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/pagination"
	"github.com/openweb3-io/chaindata/types"
)

// Client is the Polkadot-ecosystem surface of the hosted API. Polkadot
// backends page by sliding a block-range window: each page reports the
// block below which the next window must end.
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
	// Exclusive upper bound for the next window's block range.
	NextEndBlock int64 `json:"nextEndBlock"`
}

func validateChain(chain types.Chain) error {
	if chain.Ecosystem() != types.EcosystemPolkadot {
		return types.WrapErr(types.ErrUnsupportedChain, fmt.Errorf("%s is not a polkadot chain", chain))
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
	path := fmt.Sprintf("/polkadot/%s/txs/%s", chain, address)
	if q := opts.ToQuery().Encode(); q != "" {
		path = path + "?" + q
	}
	var res transactionsResponse
	if err := c.api.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	result := &pagination.FetchResult[types.Transaction]{Items: res.Items}
	if res.HasNextPage {
		next := opts
		endBlock := res.NextEndBlock
		next.EndBlock = &endBlock
		zap.S().Debugw("normalized polkadot next page", "chain", chain, "endBlock", endBlock)
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
	if err := c.api.Get(ctx, fmt.Sprintf("/polkadot/%s/tx/%s", chain, hash), &tx); err != nil {
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
	return c.api.FetchBalances(ctx, types.EcosystemPolkadot, chain, address)
}
