package utxo

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/zap"

	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/pagination"
	"github.com/openweb3-io/chaindata/types"
)

// Client is the UTXO-ecosystem surface of the hosted API. UTXO backends
// page by page number with a fixed scan direction: the ascending flag must
// be replayed on every page of a session.
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
	PageNumber  int                 `json:"pageNumber"`
	HasNextPage bool                `json:"hasNextPage"`
	Ascending   bool                `json:"ascending"`
}

func validateAddress(chain types.Chain, address types.Address) error {
	// btcd only knows bitcoin's parameter sets; the other UTXO chains'
	// formats are validated service-side.
	if chain != types.BTC {
		if address == "" {
			return types.WrapErr(types.ErrInvalidAddress, fmt.Errorf("empty address"))
		}
		return nil
	}
	if _, err := btcutil.DecodeAddress(string(address), &chaincfg.MainNetParams); err != nil {
		return types.WrapErr(types.ErrInvalidAddress, err)
	}
	return nil
}

func validateChain(chain types.Chain) error {
	if chain.Ecosystem() != types.EcosystemUTXO {
		return types.WrapErr(types.ErrUnsupportedChain, fmt.Errorf("%s is not a utxo chain", chain))
	}
	return nil
}

// FetchPage implements pagination.Fetcher.
func (c *Client) FetchPage(ctx context.Context, chain types.Chain, address types.Address, opts pagination.PageOptions) (*pagination.FetchResult[types.Transaction], error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	if err := validateAddress(chain, address); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/utxo/%s/txs/%s", chain, address)
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
		next.PageNumber = res.PageNumber + 1
		ascending := res.Ascending
		next.Ascending = &ascending
		zap.S().Debugw("normalized utxo next page", "chain", chain, "pageNumber", next.PageNumber, "ascending", ascending)
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
	if err := c.api.Get(ctx, fmt.Sprintf("/utxo/%s/tx/%s", chain, hash), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) Balances(ctx context.Context, chain types.Chain, address types.Address) (*client.BalanceSheet, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	if err := validateAddress(chain, address); err != nil {
		return nil, err
	}
	return c.api.FetchBalances(ctx, types.EcosystemUTXO, chain, address)
}
