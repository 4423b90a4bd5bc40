package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openweb3-io/chaindata/config"
	"github.com/openweb3-io/chaindata/factory"
	"github.com/openweb3-io/chaindata/types"
)

type ContextKey string

const (
	ContextFactory ContextKey = "factory"
	ContextChain   ContextKey = "chain"
)

func WrapFactory(ctx context.Context, f *factory.Factory) context.Context {
	return context.WithValue(ctx, ContextFactory, f)
}

func UnwrapFactory(ctx context.Context) *factory.Factory {
	return ctx.Value(ContextFactory).(*factory.Factory)
}

func WrapChain(ctx context.Context, chain types.Chain) context.Context {
	return context.WithValue(ctx, ContextChain, chain)
}

func UnwrapChain(ctx context.Context) types.Chain {
	return ctx.Value(ContextChain).(types.Chain)
}

func CreateContext(f *factory.Factory, chain types.Chain) context.Context {
	ctx := context.Background()
	ctx = WrapFactory(ctx, f)
	ctx = WrapChain(ctx, chain)
	return ctx
}

type ClientArgs struct {
	Chain      string
	ConfigPath string
	Network    string
	ApiKey     string
}

func AddClientArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("chain", "", "Chain to use. Required.")
	cmd.PersistentFlags().String("config", "", "Path to a yaml config file. Optional.")
	cmd.PersistentFlags().String("network", "", "Network to use (mainnet or testnet). Optional.")
	cmd.PersistentFlags().String("api-key", "", "Api key override. Optional.")
}

func ClientArgsFromCmd(cmd *cobra.Command) (*ClientArgs, error) {
	chain, _ := cmd.Flags().GetString("chain")
	configPath, _ := cmd.Flags().GetString("config")
	network, _ := cmd.Flags().GetString("network")
	apiKey, _ := cmd.Flags().GetString("api-key")

	return &ClientArgs{
		Chain:      chain,
		ConfigPath: configPath,
		Network:    network,
		ApiKey:     apiKey,
	}, nil
}

func LoadFactory(args *ClientArgs) (*factory.Factory, error) {
	cfg, err := config.Load(args.ConfigPath, args.Network)
	if err != nil {
		return nil, err
	}
	if args.ApiKey != "" {
		cfg.ApiKey = config.Secret(args.ApiKey)
	}
	return factory.NewFactory(cfg), nil
}

func LoadChain(chain string) (types.Chain, error) {
	for _, option := range types.SupportedChains {
		if strings.EqualFold(string(option), chain) {
			return option, nil
		}
	}
	return "", fmt.Errorf("invalid chain: %s\noptions: %v", chain, types.SupportedChains)
}
