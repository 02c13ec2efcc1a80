package configloader

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvProviderAPIKey = "MORALIS_API_KEY"
	EnvDatabaseURL    = "DATABASE_URL"
	EnvServerPort     = "PORTFOLIO_PORT"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port                string   `yaml:"port"`
	ReadTimeoutSeconds  int      `yaml:"readTimeoutSeconds"`
	WriteTimeoutSeconds int      `yaml:"writeTimeoutSeconds"`
	IdleTimeoutSeconds  int      `yaml:"idleTimeoutSeconds"`
	CORSAllowedOrigins  []string `yaml:"corsAllowedOrigins"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// ProviderConfig configures the chain-data provider REST API.
type ProviderConfig struct {
	APIKey                      string  `yaml:"apiKey"`
	EVMBaseURL                  string  `yaml:"evmBaseURL"`
	SolanaBaseURL               string  `yaml:"solanaBaseURL"`
	RequestTimeoutMillis        int64   `yaml:"requestTimeoutMillis"`
	RateLimitPerSecond          float64 `yaml:"rateLimitPerSecond"`
	BurstLimit                  int     `yaml:"burstLimit"`
	MaxRetries                  int     `yaml:"maxRetries"`
	RetryDelayMs                int64   `yaml:"retryDelayMs"`
	MaxTokensPerMetadataRequest int     `yaml:"maxTokensPerMetadataRequest"`
}

// CacheConfig holds configuration for the response caches.
type CacheConfig struct {
	DefaultExpirationMinutes int `yaml:"defaultExpirationMinutes"`
}

// PriceProxyConfig names an asset on another chain whose price stands in for a native coin.
type PriceProxyConfig struct {
	Chain   string `yaml:"chain"`
	Address string `yaml:"address"`
}

// AggregatorConfig tunes snapshot aggregation.
type AggregatorConfig struct {
	MaxConcurrentEnrichment      int                `yaml:"maxConcurrentEnrichment"`
	RequestTimeoutSeconds        int                `yaml:"requestTimeoutSeconds"`
	DerivativePrefix             string             `yaml:"derivativePrefix"`
	LedgerNativePriceProxies     []PriceProxyConfig `yaml:"ledgerNativePriceProxies"`
	LedgerFallbackNativePriceUSD float64            `yaml:"ledgerFallbackNativePriceUsd"`
	ScanConcurrency              int                `yaml:"scanConcurrency"`
}

// RPCConfig enables reading EVM native balances straight from JSON-RPC nodes.
type RPCConfig struct {
	Enabled                  bool                `yaml:"enabled"`
	ConnectionTimeoutSeconds int                 `yaml:"connectionTimeoutSeconds"`
	CallTimeoutSeconds       int                 `yaml:"callTimeoutSeconds"`
	Endpoints                map[string][]string `yaml:"endpoints"`
}

// DBConfig holds database-specific configurations. An empty URL disables persistence.
type DBConfig struct {
	URL            string `yaml:"url"`
	MaxConns       int32  `yaml:"maxConns"`
	MigrateOnStart bool   `yaml:"migrateOnStart"`
}

// TokenBanConfig points at the banned token list.
type TokenBanConfig struct {
	File string `yaml:"file"`
}

// SwaggerConfig holds configuration for Swagger UI.
type SwaggerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// FilesConfig lists input data files.
type FilesConfig struct {
	Wallets string `yaml:"wallets"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Provider   ProviderConfig   `yaml:"provider"`
	Cache      CacheConfig      `yaml:"cache"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
	RPC        RPCConfig        `yaml:"rpc"`
	Database   DBConfig         `yaml:"database"`
	TokenBan   TokenBanConfig   `yaml:"tokenBan"`
	Swagger    SwaggerConfig    `yaml:"swagger"`
	Files      FilesConfig      `yaml:"files"`
}

// Load reads the YAML configuration file from the given path and unmarshals it.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

// Default returns a configuration with every default applied and environment overrides honoured.
func Default() *Config {
	var cfg Config
	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvProviderAPIKey); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		cfg.Server.Port = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeoutSeconds <= 0 {
		cfg.Server.ReadTimeoutSeconds = 15
	}
	if cfg.Server.WriteTimeoutSeconds <= 0 {
		cfg.Server.WriteTimeoutSeconds = 60
	}
	if cfg.Server.IdleTimeoutSeconds <= 0 {
		cfg.Server.IdleTimeoutSeconds = 60
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Provider.EVMBaseURL == "" {
		cfg.Provider.EVMBaseURL = "https://deep-index.moralis.io/api/v2.2"
		logrus.Infof("Provider.EVMBaseURL not set, defaulting to %s", cfg.Provider.EVMBaseURL)
	}
	if cfg.Provider.SolanaBaseURL == "" {
		cfg.Provider.SolanaBaseURL = "https://solana-gateway.moralis.io"
		logrus.Infof("Provider.SolanaBaseURL not set, defaulting to %s", cfg.Provider.SolanaBaseURL)
	}
	if cfg.Provider.RequestTimeoutMillis <= 0 {
		cfg.Provider.RequestTimeoutMillis = 10000
	}
	if cfg.Provider.RateLimitPerSecond <= 0 {
		cfg.Provider.RateLimitPerSecond = 25
	}
	if cfg.Provider.BurstLimit <= 0 {
		cfg.Provider.BurstLimit = 5
	}
	if cfg.Provider.MaxRetries < 0 {
		cfg.Provider.MaxRetries = 0
	}
	if cfg.Provider.RetryDelayMs <= 0 {
		cfg.Provider.RetryDelayMs = 500
	}
	if cfg.Provider.MaxTokensPerMetadataRequest <= 0 {
		cfg.Provider.MaxTokensPerMetadataRequest = 25
	}

	if cfg.Cache.DefaultExpirationMinutes <= 0 {
		cfg.Cache.DefaultExpirationMinutes = 5
	}

	if cfg.Aggregator.MaxConcurrentEnrichment <= 0 {
		cfg.Aggregator.MaxConcurrentEnrichment = 10
	}
	if cfg.Aggregator.RequestTimeoutSeconds <= 0 {
		cfg.Aggregator.RequestTimeoutSeconds = 30
	}
	if cfg.Aggregator.DerivativePrefix == "" {
		cfg.Aggregator.DerivativePrefix = "S"
	}
	if len(cfg.Aggregator.LedgerNativePriceProxies) == 0 {
		cfg.Aggregator.LedgerNativePriceProxies = []PriceProxyConfig{
			{Chain: "ETHEREUM", Address: "0xD31a59c85aE9D8edEFeC411D448f90841571b89c"},
			{Chain: "BSC", Address: "0x570A5D26f7765Ecb712C0924E4De545B89fD43dF"},
		}
	}
	if cfg.Aggregator.LedgerFallbackNativePriceUSD <= 0 {
		cfg.Aggregator.LedgerFallbackNativePriceUSD = 100
	}
	if cfg.Aggregator.ScanConcurrency <= 0 {
		cfg.Aggregator.ScanConcurrency = 4
	}

	if cfg.RPC.ConnectionTimeoutSeconds <= 0 {
		cfg.RPC.ConnectionTimeoutSeconds = 10
	}
	if cfg.RPC.CallTimeoutSeconds <= 0 {
		cfg.RPC.CallTimeoutSeconds = 10
	}

	if cfg.Database.MaxConns <= 0 {
		cfg.Database.MaxConns = 5
	}

	if cfg.Swagger.Path == "" {
		cfg.Swagger.Path = "docs/swagger.yaml"
	}
	if cfg.Files.Wallets == "" {
		cfg.Files.Wallets = "data/wallets.txt"
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	for i, proxy := range c.Aggregator.LedgerNativePriceProxies {
		if proxy.Chain == "" || proxy.Address == "" {
			return fmt.Errorf("aggregator.ledgerNativePriceProxies[%d]: chain and address are required", i)
		}
	}
	if c.Provider.APIKey == "" {
		logrus.Warnf("provider.apiKey is empty; set %s or provider requests will be rejected", EnvProviderAPIKey)
	}
	return nil
}

// CacheTTL is the response cache lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.DefaultExpirationMinutes) * time.Minute
}

// ProviderTimeout is the per-request provider timeout used when the caller sets no deadline.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.Provider.RequestTimeoutMillis) * time.Millisecond
}

// RequestTimeout bounds one whole snapshot call.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Aggregator.RequestTimeoutSeconds) * time.Second
}

// RetryDelay is the base backoff between provider retries.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Provider.RetryDelayMs) * time.Millisecond
}

// ServerTimeouts returns the read, write and idle timeouts of the HTTP server.
func (c *Config) ServerTimeouts() (read, write, idle time.Duration) {
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second,
		time.Duration(c.Server.WriteTimeoutSeconds) * time.Second,
		time.Duration(c.Server.IdleTimeoutSeconds) * time.Second
}
