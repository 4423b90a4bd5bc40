package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the client-side settings for the hosted chaindata API.
// Every field can come from a yaml file, an explicit override, or the
// CHAINDATA_ environment (e.g. CHAINDATA_API_KEY).
type Config struct {
	BaseUrl string `mapstructure:"base_url,omitempty" json:"base_url,omitempty" yaml:"base_url,omitempty" toml:"base_url,omitempty"`
	ApiKey  Secret `mapstructure:"api_key,omitempty" json:"api_key,omitempty" yaml:"api_key,omitempty" toml:"api_key,omitempty"`
	Network string `mapstructure:"network,omitempty" json:"network,omitempty" yaml:"network,omitempty" toml:"network,omitempty"`

	// MaxNavigationHistory bounds backward pagination depth. Non-positive
	// means the engine default.
	MaxNavigationHistory int `mapstructure:"max_navigation_history,omitempty" json:"max_navigation_history,omitempty" yaml:"max_navigation_history,omitempty" toml:"max_navigation_history,omitempty"`
}

func DefaultConfig(network string) *Config {
	cfg := &Config{
		BaseUrl: "https://api.chaindata.openweb3.io",
		ApiKey:  "env:CHAINDATA_API_KEY",
		Network: network,
	}
	if network == "testnet" {
		cfg.BaseUrl = "https://api.testnet.chaindata.openweb3.io"
	}
	return cfg
}

// Load reads configuration from the given file (yaml), falling back to
// defaults for anything unset. An empty path loads defaults plus the
// environment only.
func Load(path string, network string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CHAINDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig(network)
	v.SetDefault("base_url", defaults.BaseUrl)
	v.SetDefault("api_key", string(defaults.ApiKey))
	v.SetDefault("network", defaults.Network)
	v.SetDefault("max_navigation_history", 0)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "could not read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}
	return &cfg, nil
}
