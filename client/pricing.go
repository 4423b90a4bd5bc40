package client

import (
	"context"
	"fmt"

	"github.com/openweb3-io/chaindata/types"
)

// FetchTokenPrice fetches the current price of a token from the hosted
// pricing endpoint. An empty contract means the chain's native asset. The
// service chooses the price-resolution strategy; its verdict is passed
// through unchanged.
func (client *Client) FetchTokenPrice(ctx context.Context, chain types.Chain, contract types.ContractAddress) (*types.TokenPrice, error) {
	ecosystem := chain.Ecosystem()
	if ecosystem == "" {
		return nil, types.WrapErr(types.ErrUnsupportedChain, fmt.Errorf("chain %q", chain))
	}
	path := fmt.Sprintf("/pricing/%s/price/%s", ecosystem, chain)
	if contract != "" {
		path = fmt.Sprintf("%s/%s", path, contract)
	}
	var price types.TokenPrice
	if err := client.Get(ctx, path, &price); err != nil {
		return nil, err
	}
	return &price, nil
}
