package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	DefaultRPCURL       = "https://api-ivy-eth.clover.finance"
	DefaultContract     = "0x2EdB874129E611A225351C3D629Fa46a0B2FCC2E"
	DefaultIPFSAPI      = "https://ipfs.clover.finance"
	DefaultPollInterval = 5 * time.Second
	DefaultRenderPace   = 800 * time.Millisecond
	DefaultPageSize     = 500
	DefaultNoticeTTL    = 5 * time.Second
	DefaultBackend      = BackendIPFS
)

// Content backends.
const (
	BackendIPFS    = "ipfs"
	BackendMemory  = "memory"
	BackendLevelDB = "leveldb"
	BackendFS      = "fs"
	BackendS3      = "s3"
)

// ChainConfig points at the registry contract.
type ChainConfig struct {
	RPCURL   string `toml:"rpc_url" json:"rpc_url" mapstructure:"rpc_url" validate:"required,url" flag:"rpc-url"`
	Contract string `toml:"contract" json:"contract" mapstructure:"contract" validate:"required,eth_addr" flag:"contract"`
	// ChainID pins the chain used for signing. Zero asks the node.
	ChainID uint64 `toml:"chain_id" json:"chain_id" mapstructure:"chain_id" flag:"chain-id"`
	Confirm bool   `toml:"confirm" json:"confirm" mapstructure:"confirm" flag:"confirm"`
}

// IPFSConfig holds the RPC endpoint of the IPFS node.
type IPFSConfig struct {
	API        string `toml:"api" json:"api" mapstructure:"api" flag:"ipfs-api"`
	AuthToken  string `toml:"auth_token" json:"auth_token" mapstructure:"auth_token" flag:"ipfs-auth-token"`
	AuthSecret string `toml:"auth_secret" json:"auth_secret" mapstructure:"auth_secret" flag:"ipfs-auth-secret"`
}

type WalletConfig struct {
	DataDir string `toml:"data_dir" json:"data_dir" mapstructure:"data_dir" flag:"data-dir"`
	Account string `toml:"account" json:"account" mapstructure:"account" validate:"omitempty,eth_addr" flag:"account"`
}

type SyncConfig struct {
	PollInterval time.Duration `toml:"poll_interval" json:"poll_interval" mapstructure:"poll_interval" flag:"poll-interval"`
	RenderPace   time.Duration `toml:"render_pace" json:"render_pace" mapstructure:"render_pace" flag:"render-pace"`
	PageSize     uint64        `toml:"page_size" json:"page_size" mapstructure:"page_size" validate:"min=1" flag:"page-size"`
}

type PublishConfig struct {
	NoticeTTL time.Duration `toml:"notice_ttl" json:"notice_ttl" mapstructure:"notice_ttl" flag:"notice-ttl"`
	ReuseText bool          `toml:"reuse_text" json:"reuse_text" mapstructure:"reuse_text" flag:"reuse-text"`
}

// ContentConfig selects where blobs live. Only the ipfs backend is shared
// with other clients; the rest address blobs as CIDv1 raw and suit local
// or self hosted setups.
type ContentConfig struct {
	Backend  string `toml:"backend" json:"backend" mapstructure:"backend" validate:"oneof=ipfs memory leveldb fs s3" flag:"content-backend"`
	Path     string `toml:"path" json:"path" mapstructure:"path" flag:"content-path"`
	Bucket   string `toml:"bucket" json:"bucket" mapstructure:"bucket" flag:"s3-bucket"`
	Prefix   string `toml:"prefix" json:"prefix" mapstructure:"prefix" flag:"s3-prefix"`
	Region   string `toml:"region" json:"region" mapstructure:"region" flag:"s3-region"`
	Endpoint string `toml:"endpoint" json:"endpoint" mapstructure:"endpoint" validate:"omitempty,url" flag:"s3-endpoint"`
	// Static credentials. When unset the default AWS credential chain applies.
	AccessKeyID     string `toml:"access_key_id" json:"access_key_id" mapstructure:"access_key_id" validate:"required_with=SecretAccessKey" flag:"s3-access-key-id"`
	SecretAccessKey string `toml:"secret_access_key" json:"secret_access_key" mapstructure:"secret_access_key" validate:"required_with=AccessKeyID" flag:"s3-secret-access-key"`
}

// TelemetryConfig enables error reporting. Empty DSN disables it.
type TelemetryConfig struct {
	SentryDSN   string `toml:"sentry_dsn" json:"sentry_dsn" mapstructure:"sentry_dsn" validate:"omitempty,url" flag:"sentry-dsn"`
	Environment string `toml:"environment" json:"environment" mapstructure:"environment" flag:"sentry-environment"`
}

// Config is the full client configuration.
type Config struct {
	Chain   ChainConfig   `toml:"chain" json:"chain" mapstructure:"chain"`
	IPFS    IPFSConfig    `toml:"ipfs" json:"ipfs" mapstructure:"ipfs"`
	Wallet  WalletConfig  `toml:"wallet" json:"wallet" mapstructure:"wallet"`
	Sync    SyncConfig    `toml:"sync" json:"sync" mapstructure:"sync"`
	Publish PublishConfig `toml:"publish" json:"publish" mapstructure:"publish"`
	Content   ContentConfig   `toml:"content" json:"content" mapstructure:"content"`
	Telemetry TelemetryConfig `toml:"telemetry" json:"telemetry" mapstructure:"telemetry"`
}

// LoadConfig handles the entire configuration loading process:
// flags > environment variables > config file > defaults
// It takes care of:
// 1. Loading defaults and environment variables
// 2. Loading config from file if provided via --config
// 3. Setting up the default data directory if not provided
// 4. Applying CLI flag overrides to config state
// 5. Validating the final configuration
func LoadConfig(cCtx *cli.Context) (*Config, error) {
	cfg, err := load(cCtx.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	fromCLI(cCtx, cfg)

	if err := setupDefaultDirectories(cfg); err != nil {
		return nil, fmt.Errorf("failed to set up default directories: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks field constraints and the rules that span fields.
func (cfg *Config) Validate() error {
	var errs error
	if err := validateConfig(cfg); err != nil {
		errs = multierror.Append(errs, err)
	}

	if cfg.Sync.PollInterval <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("poll interval must be positive: %s", cfg.Sync.PollInterval))
	}
	if cfg.Sync.RenderPace < 0 {
		errs = multierror.Append(errs, fmt.Errorf("render pace cannot be negative: %s", cfg.Sync.RenderPace))
	}
	if cfg.Publish.NoticeTTL < 0 {
		errs = multierror.Append(errs, fmt.Errorf("notice ttl cannot be negative: %s", cfg.Publish.NoticeTTL))
	}
	if cfg.IPFS.AuthToken != "" && cfg.IPFS.AuthSecret != "" {
		errs = multierror.Append(errs, fmt.Errorf("ipfs auth token and auth secret are mutually exclusive"))
	}

	switch cfg.Content.Backend {
	case BackendIPFS:
		if cfg.IPFS.API == "" {
			errs = multierror.Append(errs, fmt.Errorf("ipfs api endpoint is required for the ipfs backend"))
		}
	case BackendS3:
		if cfg.Content.Bucket == "" {
			errs = multierror.Append(errs, fmt.Errorf("s3 bucket is required for the s3 backend"))
		}
	case BackendLevelDB, BackendFS:
		if cfg.Content.Path == "" && cfg.Wallet.DataDir == "" {
			errs = multierror.Append(errs, fmt.Errorf("content path is required for the %s backend", cfg.Content.Backend))
		}
	}

	return errs
}

// ContentPath is where the leveldb and fs backends keep blobs.
func (cfg *Config) ContentPath() string {
	if cfg.Content.Path != "" {
		return cfg.Content.Path
	}
	return filepath.Join(cfg.Wallet.DataDir, "content", cfg.Content.Backend)
}

// load reads the configuration from path, if any, on top of defaults and
// environment variables.
func load(path string) (*Config, error) {
	v, err := setupViperWithDefaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if stat, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file path does not exist: %s", path)
			}
			return nil, fmt.Errorf("failed to read config file at path %s: %w", path, err)
		} else if stat.IsDir() {
			return nil, fmt.Errorf("config file path points to a directory: %s", path)
		}

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Content.Backend = strings.ToLower(cfg.Content.Backend)
	return cfg, nil
}

// newDefault creates a configuration with pure default values. Paths are
// left to setupDefaultDirectories.
func newDefault() *Config {
	return &Config{
		Chain: ChainConfig{
			RPCURL:   DefaultRPCURL,
			Contract: DefaultContract,
		},
		IPFS: IPFSConfig{
			API: DefaultIPFSAPI,
		},
		Sync: SyncConfig{
			PollInterval: DefaultPollInterval,
			RenderPace:   DefaultRenderPace,
			PageSize:     DefaultPageSize,
		},
		Publish: PublishConfig{
			NoticeTTL: DefaultNoticeTTL,
		},
		Content: ContentConfig{
			Backend: DefaultBackend,
		},
		Telemetry: TelemetryConfig{
			Environment: "production",
		},
	}
}

// fromCLI loads configuration values from CLI flags
func fromCLI(ctx *cli.Context, cfg *Config) {
	// Chain
	if ctx.IsSet("rpc-url") {
		cfg.Chain.RPCURL = ctx.String("rpc-url")
	}
	if ctx.IsSet("contract") {
		cfg.Chain.Contract = ctx.String("contract")
	}
	if ctx.IsSet("chain-id") {
		cfg.Chain.ChainID = ctx.Uint64("chain-id")
	}
	if ctx.IsSet("confirm") {
		cfg.Chain.Confirm = ctx.Bool("confirm")
	}

	// IPFS
	if ctx.IsSet("ipfs-api") {
		cfg.IPFS.API = ctx.String("ipfs-api")
	}
	if ctx.IsSet("ipfs-auth-token") {
		cfg.IPFS.AuthToken = ctx.String("ipfs-auth-token")
	}
	if ctx.IsSet("ipfs-auth-secret") {
		cfg.IPFS.AuthSecret = ctx.String("ipfs-auth-secret")
	}

	// Wallet
	if ctx.IsSet("data-dir") {
		cfg.Wallet.DataDir = ctx.String("data-dir")
	}
	if ctx.IsSet("account") {
		cfg.Wallet.Account = ctx.String("account")
	}

	// Sync
	if ctx.IsSet("poll-interval") {
		cfg.Sync.PollInterval = ctx.Duration("poll-interval")
	}
	if ctx.IsSet("render-pace") {
		cfg.Sync.RenderPace = ctx.Duration("render-pace")
	}
	if ctx.IsSet("page-size") {
		cfg.Sync.PageSize = ctx.Uint64("page-size")
	}

	// Publish
	if ctx.IsSet("notice-ttl") {
		cfg.Publish.NoticeTTL = ctx.Duration("notice-ttl")
	}
	if ctx.IsSet("reuse-text") {
		cfg.Publish.ReuseText = ctx.Bool("reuse-text")
	}

	// Content
	if ctx.IsSet("content-backend") {
		cfg.Content.Backend = strings.ToLower(ctx.String("content-backend"))
	}
	if ctx.IsSet("content-path") {
		cfg.Content.Path = ctx.String("content-path")
	}
	if ctx.IsSet("s3-bucket") {
		cfg.Content.Bucket = ctx.String("s3-bucket")
	}
	if ctx.IsSet("s3-prefix") {
		cfg.Content.Prefix = ctx.String("s3-prefix")
	}
	if ctx.IsSet("s3-region") {
		cfg.Content.Region = ctx.String("s3-region")
	}
	if ctx.IsSet("s3-endpoint") {
		cfg.Content.Endpoint = ctx.String("s3-endpoint")
	}
	if ctx.IsSet("s3-access-key-id") {
		cfg.Content.AccessKeyID = ctx.String("s3-access-key-id")
	}
	if ctx.IsSet("s3-secret-access-key") {
		cfg.Content.SecretAccessKey = ctx.String("s3-secret-access-key")
	}

	// Telemetry
	if ctx.IsSet("sentry-dsn") {
		cfg.Telemetry.SentryDSN = ctx.String("sentry-dsn")
	}
	if ctx.IsSet("sentry-environment") {
		cfg.Telemetry.Environment = ctx.String("sentry-environment")
	}
}

// setupViperWithDefaults creates a new Viper instance with default values and environment bindings
func setupViperWithDefaults() (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix("APPSTORE")
	v.AutomaticEnv()

	envMappings := map[string]string{
		// Chain
		"chain.rpc_url":  "RPC_URL",
		"chain.contract": "CONTRACT",
		"chain.chain_id": "CHAIN_ID",
		"chain.confirm":  "CONFIRM",

		// IPFS
		"ipfs.api":         "IPFS_API",
		"ipfs.auth_token":  "IPFS_AUTH_TOKEN",
		"ipfs.auth_secret": "IPFS_AUTH_SECRET",

		// Wallet
		"wallet.data_dir": "DATA_DIR",
		"wallet.account":  "ACCOUNT",

		// Sync
		"sync.poll_interval": "POLL_INTERVAL",
		"sync.render_pace":   "RENDER_PACE",
		"sync.page_size":     "PAGE_SIZE",

		// Publish
		"publish.notice_ttl": "NOTICE_TTL",
		"publish.reuse_text": "REUSE_TEXT",

		// Content
		"content.backend":  "CONTENT_BACKEND",
		"content.path":     "CONTENT_PATH",
		"content.bucket":   "S3_BUCKET",
		"content.prefix":   "S3_PREFIX",
		"content.region":   "S3_REGION",
		"content.endpoint": "S3_ENDPOINT",

		"content.access_key_id":     "S3_ACCESS_KEY_ID",
		"content.secret_access_key": "S3_SECRET_ACCESS_KEY",

		// Telemetry
		"telemetry.sentry_dsn":  "SENTRY_DSN",
		"telemetry.environment": "SENTRY_ENVIRONMENT",
	}

	for key, envVar := range envMappings {
		if err := v.BindEnv(key, "APPSTORE_"+envVar); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", key, err)
		}
	}

	defaultCfg := newDefault()

	v.SetDefault("chain.rpc_url", defaultCfg.Chain.RPCURL)
	v.SetDefault("chain.contract", defaultCfg.Chain.Contract)
	v.SetDefault("chain.chain_id", defaultCfg.Chain.ChainID)
	v.SetDefault("chain.confirm", defaultCfg.Chain.Confirm)
	v.SetDefault("ipfs.api", defaultCfg.IPFS.API)
	v.SetDefault("sync.poll_interval", defaultCfg.Sync.PollInterval)
	v.SetDefault("sync.render_pace", defaultCfg.Sync.RenderPace)
	v.SetDefault("sync.page_size", defaultCfg.Sync.PageSize)
	v.SetDefault("publish.notice_ttl", defaultCfg.Publish.NoticeTTL)
	v.SetDefault("publish.reuse_text", defaultCfg.Publish.ReuseText)
	v.SetDefault("content.backend", defaultCfg.Content.Backend)
	v.SetDefault("telemetry.environment", defaultCfg.Telemetry.Environment)

	return v, nil
}

// setupDefaultDirectories configures the data directory if it is not already set
func setupDefaultDirectories(cfg *Config) error {
	if cfg.Wallet.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting user home directory: %w", err)
		}
		cfg.Wallet.DataDir = filepath.Join(homeDir, ".appstore")
	}

	if err := os.MkdirAll(cfg.Wallet.DataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", cfg.Wallet.DataDir, err)
	}
	return nil
}
