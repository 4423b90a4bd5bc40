package types

// Balance is one token position of an account.
type Balance struct {
	// Contract or mint of the token; empty for the chain's native asset.
	Contract ContractAddress `json:"contract,omitempty"`
	Symbol   string          `json:"symbol,omitempty"`
	Decimals int32           `json:"decimals,omitempty"`
	// Raw balance in the token's smallest unit.
	Balance BigInt `json:"balance"`
	// Human-readable amount; output-only, derived from Balance and Decimals.
	Amount *AmountHumanReadable `json:"amount,omitempty"`
}

func NewBalance(contract ContractAddress, symbol string, decimals int32, raw BigInt) *Balance {
	human := raw.ToHuman(decimals)
	return &Balance{
		Contract: contract,
		Symbol:   symbol,
		Decimals: decimals,
		Balance:  raw,
		Amount:   &human,
	}
}
