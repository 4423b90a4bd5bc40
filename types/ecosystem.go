package types

import "slices"

// Ecosystem is the family of chains a backend belongs to. The hosted API
// groups its endpoints by ecosystem, not by individual chain.
type Ecosystem string

// List of supported Ecosystem
const (
	EcosystemEVM      = Ecosystem("evm")
	EcosystemSVM      = Ecosystem("svm")
	EcosystemUTXO     = Ecosystem("utxo")
	EcosystemCosmos   = Ecosystem("cosmos")
	EcosystemTVM      = Ecosystem("tvm")
	EcosystemPolkadot = Ecosystem("polkadot")
	EcosystemXRPL     = Ecosystem("xrpl")
)

var SupportedEcosystems = []Ecosystem{
	EcosystemEVM,
	EcosystemSVM,
	EcosystemUTXO,
	EcosystemCosmos,
	EcosystemTVM,
	EcosystemPolkadot,
	EcosystemXRPL,
}

func (ecosystem Ecosystem) Valid() bool {
	return slices.Contains(SupportedEcosystems, ecosystem)
}

// Chain is the short name of a chain as the hosted API expects it in URLs.
type Chain string

const (
	ETH       = Chain("eth")
	Polygon   = Chain("polygon")
	BSC       = Chain("bsc")
	Avalanche = Chain("avalanche")
	Arbitrum  = Chain("arbitrum")
	Optimism  = Chain("optimism")
	Base      = Chain("base")
	SOL       = Chain("solana")
	BTC       = Chain("btc")
	LTC       = Chain("ltc")
	DOGE      = Chain("doge")
	BCH       = Chain("bch")
	CosmosHub = Chain("cosmoshub")
	Osmosis   = Chain("osmosis")
	Celestia  = Chain("celestia")
	Injective = Chain("injective")
	TRX       = Chain("tron")
	DOT       = Chain("polkadot")
	KSM       = Chain("kusama")
	XRP       = Chain("xrpl")
)

var SupportedChains = []Chain{
	ETH, Polygon, BSC, Avalanche, Arbitrum, Optimism, Base,
	SOL,
	BTC, LTC, DOGE, BCH,
	CosmosHub, Osmosis, Celestia, Injective,
	TRX,
	DOT, KSM,
	XRP,
}

func (chain Chain) Valid() bool {
	return chain.Ecosystem() != ""
}

func (chain Chain) Ecosystem() Ecosystem {
	switch chain {
	case ETH, Polygon, BSC, Avalanche, Arbitrum, Optimism, Base:
		return EcosystemEVM
	case SOL:
		return EcosystemSVM
	case BTC, LTC, DOGE, BCH:
		return EcosystemUTXO
	case CosmosHub, Osmosis, Celestia, Injective:
		return EcosystemCosmos
	case TRX:
		return EcosystemTVM
	case DOT, KSM:
		return EcosystemPolkadot
	case XRP:
		return EcosystemXRPL
	}
	return ""
}

// Address is an account identifier in whatever format the chain uses.
// Validation is ecosystem-specific and lives in the ecosystem clients.
type Address string

// TxHash is a transaction hash or signature, ecosystem-native format.
type TxHash string

// ContractAddress is a token contract or mint address.
type ContractAddress string
