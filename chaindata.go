package chaindata

import (
	"context"
	"encoding/json"

	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/pagination"
	"github.com/openweb3-io/chaindata/types"
)

// IClient is the read surface every ecosystem client provides.
type IClient interface {
	/**
	 * first page of an account's classified transactions
	 */
	Transactions(ctx context.Context, chain types.Chain, address types.Address, options ...pagination.Option) (*pagination.TransactionsPage[types.Transaction], error)

	/**
	 * resume a pagination session from a cursor token
	 */
	TransactionsFromCursor(ctx context.Context, chain types.Chain, address types.Address, token string) (*pagination.TransactionsPage[types.Transaction], error)

	/**
	 * single classified transaction by hash
	 */
	Transaction(ctx context.Context, chain types.Chain, hash types.TxHash) (*types.Transaction, error)

	/**
	 * token balances of an account
	 */
	Balances(ctx context.Context, chain types.Chain, address types.Address) (*client.BalanceSheet, error)
}

// ISimulator is implemented by ecosystem clients whose backends can
// classify an unsigned transaction before it executes.
type ISimulator interface {
	Simulate(ctx context.Context, chain types.Chain, rawTx json.RawMessage) (*types.SimulationResult, error)
}
