package types

// TokenPrice is the hosted pricing endpoint's answer for one token.
type TokenPrice struct {
	Chain    Chain           `json:"chain"`
	Contract ContractAddress `json:"contract,omitempty"`
	Symbol   string          `json:"symbol,omitempty"`
	// Price in the quote currency, usually USD.
	Price    AmountHumanReadable `json:"price"`
	Currency string              `json:"currency"`
	// Where the price came from, e.g. an exchange or a liquidity pool.
	// Strategy selection is the service's concern, reported verbatim.
	PriceSource string `json:"priceSource,omitempty"`
	// Unix time the price was observed at.
	Timestamp int64 `json:"timestamp,omitempty"`
}
