package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/unleashai/inquiries-backend/internal/pkg/retry"
)

// Config holds the chat backend configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8787"`

	// External service configurations
	GatewayCfg     GatewayConnectorConfig     `envPrefix:"GATEWAY_"`
	VectorIndexCfg VectorIndexConnectorConfig `envPrefix:"VECTOR_"`

	// Chat behavior
	ChatCfg ChatConfig `envPrefix:"CHAT_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type GatewayConnectorConfig struct {
	HTTPClientConfig
	EmbedEndpoint    string `env:"EMBED_ENDPOINT,notEmpty"`
	GenerateEndpoint string `env:"GENERATE_ENDPOINT,notEmpty"`
}

type VectorIndexConnectorConfig struct {
	HTTPClientConfig
	UpsertEndpoint string `env:"UPSERT_ENDPOINT,notEmpty"`
	QueryEndpoint  string `env:"QUERY_ENDPOINT,notEmpty"`
}

// ChatConfig tunes retrieval and prompt assembly.
type ChatConfig struct {
	TopK            int           `env:"TOP_K" envDefault:"3"`
	ContextMaxBytes int           `env:"CONTEXT_MAX_BYTES" envDefault:"4000"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	ReinforceSystem bool          `env:"REINFORCE_SYSTEM" envDefault:"false"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

// UploaderConfig drives the batch ingestion CLI.
type UploaderConfig struct {
	HTTPClientConfig
	IngestEndpoint  string               `env:"INGEST_ENDPOINT" envDefault:"/api/ingest"`
	BatchSize       int                  `env:"BATCH_SIZE" envDefault:"50"`
	TruncateLimit   int                  `env:"TRUNCATE_LIMIT" envDefault:"4000"`
	InterBatchDelay time.Duration        `env:"INTER_BATCH_DELAY" envDefault:"1s"`
	StartBatch      int                  `env:"START_BATCH" envDefault:"0"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	loadEnvFile(*envFlag)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadUploaderConfig parses the uploader environment. Flags are owned by the
// CLI entrypoint, so only the env file name is taken here. All uploader
// variables share the UPLOADER_ prefix.
func LoadUploaderConfig(environment string) (*UploaderConfig, error) {
	loadEnvFile(environment)

	cfg := &UploaderConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "UPLOADER_"}); err != nil {
		return nil, err
	}

	if err := validateUploaderConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func loadEnvFile(environment string) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}
}

func validateConfig(cfg *Config) error {
	if cfg.ChatCfg.TopK < 1 || cfg.ChatCfg.TopK > 20 {
		return fmt.Errorf("CHAT_TOP_K must be between 1 and 20, got %d", cfg.ChatCfg.TopK)
	}
	if cfg.ChatCfg.ContextMaxBytes < 1 {
		return fmt.Errorf("CHAT_CONTEXT_MAX_BYTES must be positive, got %d", cfg.ChatCfg.ContextMaxBytes)
	}
	return nil
}

func validateUploaderConfig(cfg *UploaderConfig) error {
	if cfg.BatchSize < 1 || cfg.BatchSize > 50 {
		return fmt.Errorf("UPLOADER_BATCH_SIZE must be between 1 and 50, got %d", cfg.BatchSize)
	}
	if cfg.TruncateLimit < 1 {
		return fmt.Errorf("UPLOADER_TRUNCATE_LIMIT must be positive, got %d", cfg.TruncateLimit)
	}
	if cfg.StartBatch < 0 {
		return fmt.Errorf("UPLOADER_START_BATCH must not be negative, got %d", cfg.StartBatch)
	}
	if cfg.Retry.Attempts < 1 {
		return fmt.Errorf("UPLOADER_RETRY_ATTEMPTS must be at least 1, got %d", cfg.Retry.Attempts)
	}
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
