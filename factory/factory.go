package factory

import (
	"context"

	chaindata "github.com/openweb3-io/chaindata"
	"github.com/openweb3-io/chaindata/client"
	"github.com/openweb3-io/chaindata/config"
	"github.com/openweb3-io/chaindata/factory/ecosystems"
	"github.com/openweb3-io/chaindata/types"
)

type IFactory interface {
	NewClient(ctx context.Context, chain types.Chain) (chaindata.IClient, error)
}

type Factory struct {
	cfg *config.Config
}

var _ IFactory = &Factory{}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{cfg: cfg}
}

func NewDefaultFactory() *Factory {
	return &Factory{cfg: config.DefaultConfig("")}
}

func (f *Factory) Config() *config.Config {
	return f.cfg
}

// NewApiClient resolves the api key and returns the low-level HTTP client.
func (f *Factory) NewApiClient(ctx context.Context) (*client.Client, error) {
	apiKey, err := f.cfg.ApiKey.Load(ctx)
	if err != nil {
		return nil, err
	}
	api := client.NewClient(f.cfg.BaseUrl, apiKey)
	api.Network = f.cfg.Network
	return api, nil
}

// NewClient returns the ecosystem client for the chain.
func (f *Factory) NewClient(ctx context.Context, chain types.Chain) (chaindata.IClient, error) {
	api, err := f.NewApiClient(ctx)
	if err != nil {
		return nil, err
	}
	return ecosystems.NewClient(api, chain, f.cfg.MaxNavigationHistory)
}
