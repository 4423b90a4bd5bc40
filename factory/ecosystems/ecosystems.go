package ecosystems

import (
	"fmt"

	chaindata "github.com/openweb3-io/chaindata"
	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/ecosystems/cosmos"
	"github.com/openweb3-io/chaindata/ecosystems/evm"
	"github.com/openweb3-io/chaindata/ecosystems/polkadot"
	"github.com/openweb3-io/chaindata/ecosystems/svm"
	"github.com/openweb3-io/chaindata/ecosystems/tvm"
	"github.com/openweb3-io/chaindata/ecosystems/utxo"
	"github.com/openweb3-io/chaindata/ecosystems/xrpl"
	"github.com/openweb3-io/chaindata/types"
)

type ClientCreator func(api *client.Client, maxNavigationHistory int) (chaindata.IClient, error)

var creatorMap = map[types.Ecosystem]ClientCreator{}

func RegisterClient(ecosystem types.Ecosystem, creator ClientCreator) {
	creatorMap[ecosystem] = creator
}

func init() {
	RegisterClient(types.EcosystemEVM, func(api *client.Client, max int) (chaindata.IClient, error) {
		c := evm.NewClient(api)
		c.MaxNavigationHistory = max
		return c, nil
	})

	RegisterClient(types.EcosystemSVM, func(api *client.Client, max int) (chaindata.IClient, error) {
		c := svm.NewClient(api)
		c.MaxNavigationHistory = max
		return c, nil
	})

	RegisterClient(types.EcosystemUTXO, func(api *client.Client, max int) (chaindata.IClient, error) {
		c := utxo.NewClient(api)
		c.MaxNavigationHistory = max
		return c, nil
	})

	RegisterClient(types.EcosystemCosmos, func(api *client.Client, max int) (chaindata.IClient, error) {
		c := cosmos.NewClient(api)
		c.MaxNavigationHistory = max
		return c, nil
	})

	RegisterClient(types.EcosystemTVM, func(api *client.Client, max int) (chaindata.IClient, error) {
		c := tvm.NewClient(api)
		c.MaxNavigationHistory = max
		return c, nil
	})

	RegisterClient(types.EcosystemPolkadot, func(api *client.Client, max int) (chaindata.IClient, error) {
		c := polkadot.NewClient(api)
		c.MaxNavigationHistory = max
		return c, nil
	})

	RegisterClient(types.EcosystemXRPL, func(api *client.Client, max int) (chaindata.IClient, error) {
		c := xrpl.NewClient(api)
		c.MaxNavigationHistory = max
		return c, nil
	})
}

// NewClient returns the ecosystem client responsible for the chain.
func NewClient(api *client.Client, chain types.Chain, maxNavigationHistory int) (chaindata.IClient, error) {
	ecosystem := chain.Ecosystem()
	creator, ok := creatorMap[ecosystem]
	if !ok {
		return nil, fmt.Errorf("no client registered for ecosystem %q (chain %s)", ecosystem, chain)
	}
	return creator(api, maxNavigationHistory)
}
