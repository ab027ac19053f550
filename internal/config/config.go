package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration, read once at startup. Provider
// credentials and caps feed the provider chain; there is no hot reload.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes

	// Store
	DBURL string `env:"DB_URL"`

	// Queue
	QueueURL string `env:"QUEUE_URL"`

	// Cache
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" envDefault:"3600"` // seconds

	// Remote LLM provider (enabled when the key is set)
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	OpenAIModel string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Remote inference API provider (enabled when the key is set)
	HFAPIKey       string `env:"HF_API_KEY"`
	HFBaseURL      string `env:"HF_BASE_URL"`
	HFSummaryModel string `env:"HF_SUMMARIZATION_MODEL" envDefault:"facebook/bart-large-cnn"`
	HFQAModel      string `env:"HF_QA_MODEL" envDefault:"deepset/roberta-base-squad2"`

	// Local inference provider (enabled when a URL is set)
	UseLocalModel bool   `env:"USE_LOCAL_MODEL" envDefault:"true"`
	LocalModelURL string `env:"LOCAL_MODEL_URL"`
	LocalModel    string `env:"LOCAL_MODEL" envDefault:"llama3.1:8b"`

	// Processing caps
	MaxContentLength int `env:"MAX_CONTENT_LENGTH" envDefault:"4000"`
	MaxTagCount      int `env:"MAX_TAGS_COUNT" envDefault:"5"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
