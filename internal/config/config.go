package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Extract  ExtractConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int
	MinConns       int
	MigrationsPath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// OCRConfig holds the collaborator endpoints for the engine cascade.
// PDFServiceURL and VisionServiceURL are the internal OCR proxies;
// VisionAPIKey authenticates the last-resort direct Vision API call.
type OCRConfig struct {
	PDFServiceURL    string
	VisionServiceURL string
	VisionAPIKey     string
	HTTPTimeout      time.Duration
	CacheTTL         time.Duration
}

type LLMConfig struct {
	OpenAIKey        string
	AnthropicKey     string
	DefaultProvider  string
	DefaultModel     string
	FallbackProvider string
	FallbackModel    string
	MaxRetries       int
}

type ExtractConfig struct {
	KKServiceURL string
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxConns, err := getEnvInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	minConns, err := getEnvInt("DB_MIN_CONNS", 2)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	maxRetries, err := getEnvInt("LLM_MAX_RETRIES", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_MAX_RETRIES: %w", err)
	}

	httpTimeout, err := getEnvDuration("OCR_HTTP_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid OCR_HTTP_TIMEOUT: %w", err)
	}

	// TTL of 0 disables the response cache: every request re-runs the
	// full cascade.
	cacheTTL, err := getEnvDuration("OCR_CACHE_TTL", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid OCR_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MaxConns:       maxConns,
			MinConns:       minConns,
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		OCR: OCRConfig{
			PDFServiceURL:    getEnv("OCR_PDF_SERVICE_URL", ""),
			VisionServiceURL: getEnv("OCR_VISION_SERVICE_URL", ""),
			VisionAPIKey:     getEnv("GOOGLE_VISION_API_KEY", ""),
			HTTPTimeout:      httpTimeout,
			CacheTTL:         cacheTTL,
		},
		LLM: LLMConfig{
			OpenAIKey:        getEnv("OPENAI_API_KEY", ""),
			AnthropicKey:     getEnv("ANTHROPIC_API_KEY", ""),
			DefaultProvider:  getEnv("LLM_DEFAULT_PROVIDER", "openai"),
			DefaultModel:     getEnv("LLM_DEFAULT_MODEL", "gpt-4o-mini"),
			FallbackProvider: getEnv("LLM_FALLBACK_PROVIDER", ""),
			FallbackModel:    getEnv("LLM_FALLBACK_MODEL", "claude-3-haiku-20240307"),
			MaxRetries:       maxRetries,
		},
		Extract: ExtractConfig{
			KKServiceURL: getEnv("KK_EXTRACTOR_URL", ""),
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) Validate() error {
	var missing []string
	if c.OCR.VisionServiceURL == "" && c.OCR.VisionAPIKey == "" {
		missing = append(missing, "OCR_VISION_SERVICE_URL or GOOGLE_VISION_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return time.ParseDuration(v)
}
