package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/blocknamehq/blockname-go/basicauth"
	"github.com/blocknamehq/blockname-go/logutil"
	"github.com/blocknamehq/blockname-go/registry"
	"github.com/blocknamehq/blockname-go/validator"
)

type config struct {
	AppID     string        `env:"BLOCKNAME_APP_ID"     json:"app_id"`
	AppSecret string        `env:"BLOCKNAME_APP_SECRET" json:"app_secret"`
	Network   string        `env:"BLOCKNAME_NETWORK"    envDefault:"mainnet" json:"network"   validate:"required,oneof=mainnet staging"`
	LogLevel  string        `env:"BLOCKNAME_LOG_LEVEL"  envDefault:"warn"    json:"log_level" validate:"required"`
	Timeout   time.Duration `env:"BLOCKNAME_TIMEOUT"    envDefault:"30s"     json:"timeout"`

	// Endpoint overrides for self-hosted registries. Empty means the
	// selected network's default.
	UsersURL        string `env:"BLOCKNAME_USERS_URL"        json:"users_url"        validate:"omitempty,url"`
	SearchURL       string `env:"BLOCKNAME_SEARCH_URL"       json:"search_url"       validate:"omitempty,url"`
	TransactionsURL string `env:"BLOCKNAME_TRANSACTIONS_URL" json:"transactions_url" validate:"omitempty,url"`
	AddressesURL    string `env:"BLOCKNAME_ADDRESSES_URL"    json:"addresses_url"    validate:"omitempty,url"`
	DomainsURL      string `env:"BLOCKNAME_DOMAINS_URL"      json:"domains_url"      validate:"omitempty,url"`
}

func loadConfig(cmd *cobra.Command) (*config, error) {
	// a missing .env file is fine; the environment may be set directly
	_ = godotenv.Load()

	var cfg config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if network, _ := cmd.Flags().GetString("network"); network != "" {
		cfg.Network = network
	}

	if logLevel, _ := cmd.Flags().GetString("log-level"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := validator.Default().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *config) endpoints() registry.Endpoints {
	endpoints := registry.DefaultEndpoints()
	if c.Network == "staging" {
		endpoints = registry.StagingEndpoints()
	}

	if c.UsersURL != "" {
		endpoints.Users = c.UsersURL
	}

	if c.SearchURL != "" {
		endpoints.Search = c.SearchURL
	}

	if c.TransactionsURL != "" {
		endpoints.Transactions = c.TransactionsURL
	}

	if c.AddressesURL != "" {
		endpoints.Addresses = c.AddressesURL
	}

	if c.DomainsURL != "" {
		endpoints.Domains = c.DomainsURL
	}

	return endpoints
}

func (c *config) logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logutil.ParseZerologLevel(c.LogLevel)).
		With().
		Timestamp().
		Logger()
}

// newClient builds the registry client for the selected environment.
func newClient(cmd *cobra.Command) (*registry.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	envs := registry.NewEnvironments(
		basicauth.New(cfg.AppID, cfg.AppSecret),
		registry.WithLogger(cfg.logger()),
		registry.WithTimeout(cfg.Timeout),
	)
	envs.Register(cfg.Network, cfg.endpoints())

	return envs.Client(cfg.Network), nil
}
