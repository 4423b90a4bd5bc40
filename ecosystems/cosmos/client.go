package cosmos

import (
	"context"
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"go.uber.org/zap"

	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/pagination"
	"github.com/openweb3-io/chaindata/types"
)

// Client is the Cosmos-ecosystem surface of the hosted API. Cosmos backends
// page with an opaque page key returned by the node's query layer.
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
	NextPageKey string              `json:"nextPageKey"`
}

func validateAddress(address types.Address) error {
	if _, _, err := bech32.DecodeAndConvert(string(address)); err != nil {
		return types.WrapErr(types.ErrInvalidAddress, err)
	}
	return nil
}

func validateChain(chain types.Chain) error {
	if chain.Ecosystem() != types.EcosystemCosmos {
		return types.WrapErr(types.ErrUnsupportedChain, fmt.Errorf("%s is not a cosmos chain", chain))
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
	path := fmt.Sprintf("/cosmos/%s/txs/%s", chain, address)
	if q := opts.ToQuery().Encode(); q != "" {
		path = path + "?" + q
	}
	var res transactionsResponse
	if err := c.api.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	result := &pagination.FetchResult[types.Transaction]{Items: res.Items}
	if res.HasNextPage && res.NextPageKey != "" {
		next := opts
		next.PageKey = res.NextPageKey
		zap.S().Debugw("normalized cosmos next page", "chain", chain, "pageKey", next.PageKey)
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
	if err := c.api.Get(ctx, fmt.Sprintf("/cosmos/%s/tx/%s", chain, hash), &tx); err != nil {
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
	return c.api.FetchBalances(ctx, types.EcosystemCosmos, chain, address)
}
