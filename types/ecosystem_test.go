package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openweb3-io/chaindata/types"
)

func TestChainEcosystems(t *testing.T) {
	vectors := []struct {
		chain     types.Chain
		ecosystem types.Ecosystem
	}{
		{types.ETH, types.EcosystemEVM},
		{types.Base, types.EcosystemEVM},
		{types.SOL, types.EcosystemSVM},
		{types.BTC, types.EcosystemUTXO},
		{types.BCH, types.EcosystemUTXO},
		{types.Celestia, types.EcosystemCosmos},
		{types.TRX, types.EcosystemTVM},
		{types.KSM, types.EcosystemPolkadot},
		{types.XRP, types.EcosystemXRPL},
	}
	for _, v := range vectors {
		require.Equal(t, v.ecosystem, v.chain.Ecosystem(), "chain %s", v.chain)
		require.True(t, v.chain.Valid())
		require.True(t, v.ecosystem.Valid())
	}
}

func TestEveryChainHasAnEcosystem(t *testing.T) {
	for _, chain := range types.SupportedChains {
		require.True(t, chain.Valid(), "chain %s", chain)
	}
	require.False(t, types.Chain("nope").Valid())
	require.False(t, types.Ecosystem("nope").Valid())
}
