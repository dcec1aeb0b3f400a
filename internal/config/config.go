package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// EthereumConfig holds the chain and contract configuration
type EthereumConfig struct {
	RPCURL              string        `mapstructure:"rpc_url"`
	ChainID             int64         `mapstructure:"chain_id"`
	ContractAddress     string        `mapstructure:"contract_address"`
	ReceiptTimeout      time.Duration `mapstructure:"receipt_timeout"`       // how long to wait for a transaction to be mined
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"` // first receipt polling interval
}

// WalletConfig holds the signing key loaded into the wallet session at startup
type WalletConfig struct {
	PrivateKey string `mapstructure:"private_key"` // hex encoded, empty starts disconnected
}

// LoaderConfig holds collection loading configuration
type LoaderConfig struct {
	WindowSize     int `mapstructure:"window_size"`
	MaxConcurrency int `mapstructure:"max_concurrency"`
}

// SearchConfig holds search configuration
type SearchConfig struct {
	Locale      string        `mapstructure:"locale"` // BCP 47 tag used for collation
	QuietPeriod time.Duration `mapstructure:"quiet_period"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int      `mapstructure:"idle_timeout"`  // in seconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	Wallet     WalletConfig   `mapstructure:"wallet"`
	Loader     LoaderConfig   `mapstructure:"loader"`
	Search     SearchConfig   `mapstructure:"search"`
}

// CardSearchConfig holds configuration for the card-search command
type CardSearchConfig struct {
	BaseConfig `mapstructure:",squash"`
	Ethereum   EthereumConfig `mapstructure:"ethereum"`
	Loader     LoaderConfig   `mapstructure:"loader"`
	Search     SearchConfig   `mapstructure:"search"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120) // card actions wait for the receipt
	v.SetDefault("server.idle_timeout", 120)
	setChainDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadCardSearchConfig loads configuration for the card-search command
func LoadCardSearchConfig(configFile string, envPath string) (*CardSearchConfig, error) {
	v := configureViper("card-search", configFile, envPath)

	v.SetDefault("debug", false)
	setChainDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config CardSearchConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setChainDefaults(v *viper.Viper) {
	v.SetDefault("ethereum.chain_id", 11155111)
	v.SetDefault("ethereum.receipt_timeout", "2m")
	v.SetDefault("ethereum.receipt_poll_interval", "1s")
	v.SetDefault("loader.window_size", 50)
	v.SetDefault("loader.max_concurrency", 64)
	v.SetDefault("search.locale", "en")
	v.SetDefault("search.quiet_period", "300ms")
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}
	return nil
}

// Validate checks the settings every command needs to reach the contract
func (c *EthereumConfig) Validate() error {
	if c.RPCURL == "" {
		return errors.New("ethereum.rpc_url is required")
	}
	if !common.IsHexAddress(c.ContractAddress) {
		return fmt.Errorf("ethereum.contract_address %q is not a valid address", c.ContractAddress)
	}
	if c.ChainID <= 0 {
		return errors.New("ethereum.chain_id must be positive")
	}
	return nil
}

// Validate checks the loader window
func (c *LoaderConfig) Validate() error {
	if c.WindowSize < 1 {
		return errors.New("loader.window_size must be at least 1")
	}
	return nil
}

// Tag parses the collation locale
func (c *SearchConfig) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid search.locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Validate validates the API configuration
func (c *APIConfig) Validate() error {
	if err := c.Ethereum.Validate(); err != nil {
		return err
	}
	if err := c.Loader.Validate(); err != nil {
		return err
	}
	_, err := c.Search.Tag()
	return err
}

// Validate validates the card-search configuration
func (c *CardSearchConfig) Validate() error {
	if err := c.Ethereum.Validate(); err != nil {
		return err
	}
	if err := c.Loader.Validate(); err != nil {
		return err
	}
	_, err := c.Search.Tag()
	return err
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/card-search/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_GREETINGS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.chain_id",
		"ethereum.contract_address",
		"ethereum.receipt_timeout",
		"ethereum.receipt_poll_interval",
		// Wallet
		"wallet.private_key",
		// Loader
		"loader.window_size",
		"loader.max_concurrency",
		// Search
		"search.locale",
		"search.quiet_period",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
