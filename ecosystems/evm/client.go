package evm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/pagination"
	"github.com/openweb3-io/chaindata/types"
)

// Client is the EVM-ecosystem surface of the hosted API. EVM backends page
// with an ecosystem-native forward URL; the URL's query is normalized into
// uniform PageOptions so the pagination engine never sees the URL itself.
type Client struct {
	api *client.Client

	// MaxNavigationHistory bounds backward navigation depth; non-positive
	// means pagination.DefaultMaxNavigationHistory.
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
	if !gethcommon.IsHexAddress(string(address)) {
		return types.WrapErr(types.ErrInvalidAddress, fmt.Errorf("not a hex address: %s", address))
	}
	return nil
}

func validateChain(chain types.Chain) error {
	if chain.Ecosystem() != types.EcosystemEVM {
		return types.WrapErr(types.ErrUnsupportedChain, fmt.Errorf("%s is not an evm chain", chain))
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
	path := fmt.Sprintf("/evm/%s/txs/%s", chain, address)
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
		zap.S().Debugw("normalized evm next page", "chain", chain, "endBlock", next.EndBlock)
		result.NextPageKeys = &next
	}
	return result, nil
}

// Transactions fetches the first page of an account's classified
// transactions.
func (c *Client) Transactions(ctx context.Context, chain types.Chain, address types.Address, options ...pagination.Option) (*pagination.TransactionsPage[types.Transaction], error) {
	opts, err := pagination.NewPageOptions(options...)
	if err != nil {
		return nil, err
	}
	return pagination.FetchFirst[types.Transaction](ctx, c, chain, address, opts, c.MaxNavigationHistory)
}

// TransactionsFromCursor resumes a pagination session from a cursor token.
func (c *Client) TransactionsFromCursor(ctx context.Context, chain types.Chain, address types.Address, token string) (*pagination.TransactionsPage[types.Transaction], error) {
	return pagination.FromCursor[types.Transaction](ctx, c, chain, address, token, c.MaxNavigationHistory)
}

// Transaction fetches a single classified transaction.
func (c *Client) Transaction(ctx context.Context, chain types.Chain, hash types.TxHash) (*types.Transaction, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	var tx types.Transaction
	if err := c.api.Get(ctx, fmt.Sprintf("/evm/%s/tx/%s", chain, hash), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Balances fetches the account's token balances.
func (c *Client) Balances(ctx context.Context, chain types.Chain, address types.Address) (*client.BalanceSheet, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	return c.api.FetchBalances(ctx, types.EcosystemEVM, chain, address)
}

// Simulate classifies an unsigned transaction as if it had executed,
// without signing or broadcasting anything. The transaction payload is the
// ecosystem's native JSON shape, passed through opaquely.
func (c *Client) Simulate(ctx context.Context, chain types.Chain, rawTx json.RawMessage) (*types.SimulationResult, error) {
	if err := validateChain(chain); err != nil {
		return nil, err
	}
	var res types.SimulationResult
	if err := c.api.Post(ctx, fmt.Sprintf("/evm/%s/simulate", chain), rawTx, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
