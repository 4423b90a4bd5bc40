package client

import (
	"context"
	"fmt"

	"github.com/tidwall/btree"

	"github.com/openweb3-io/chaindata/types"
)

// BalanceSheet keeps an account's token positions ordered by contract so
// repeated fetches produce deterministic listings. The native asset sorts
// first under its empty contract key.
type BalanceSheet struct {
	m btree.Map[string, *types.Balance]
}

func NewBalanceSheet(balances []*types.Balance) *BalanceSheet {
	sheet := &BalanceSheet{}
	for _, b := range balances {
		sheet.Add(b)
	}
	return sheet
}

// Add inserts or replaces the position for the balance's contract.
func (sheet *BalanceSheet) Add(balance *types.Balance) {
	sheet.m.Set(string(balance.Contract), balance)
}

// Get returns the position for a contract, if present.
func (sheet *BalanceSheet) Get(contract types.ContractAddress) (*types.Balance, bool) {
	return sheet.m.Get(string(contract))
}

// Native returns the native-asset position, if present.
func (sheet *BalanceSheet) Native() (*types.Balance, bool) {
	return sheet.m.Get("")
}

// List returns all positions ordered by contract.
func (sheet *BalanceSheet) List() []*types.Balance {
	out := make([]*types.Balance, 0, sheet.m.Len())
	sheet.m.Scan(func(_ string, b *types.Balance) bool {
		out = append(out, b)
		return true
	})
	return out
}

func (sheet *BalanceSheet) Len() int {
	return sheet.m.Len()
}

type balancesResponse struct {
	Balances []*types.Balance `json:"balances"`
}

// FetchBalances fetches an account's token balances from the hosted API and
// returns them as an ordered sheet.
func (client *Client) FetchBalances(ctx context.Context, ecosystem types.Ecosystem, chain types.Chain, address types.Address) (*BalanceSheet, error) {
	var res balancesResponse
	path := fmt.Sprintf("/%s/%s/balances/%s", ecosystem, chain, address)
	if err := client.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	sheet := NewBalanceSheet(res.Balances)
	return sheet, nil
}
