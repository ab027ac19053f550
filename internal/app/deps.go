package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/openai/openai-go/v3"

	"doc-insight/internal/cache"
	"doc-insight/internal/config"
	"doc-insight/internal/logger"
	"doc-insight/internal/pipeline"
	"doc-insight/internal/provider"
	"doc-insight/internal/queue"
	"doc-insight/internal/store"
)

// Deps bundles common runtime dependencies for services. Everything here is
// built once at process start and shared read-only across requests.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Store    store.Store
	Queue    queue.Queue
	Cache    cache.Cache
	Pipeline *pipeline.Pipeline
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	st, err := buildStore(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize store: %w", err)
	}
	q, err := buildQueue(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize queue: %w", err)
	}
	return Deps{
		Config:   cfg,
		Log:      log,
		Store:    st,
		Queue:    q,
		Cache:    buildCache(cfg, log),
		Pipeline: BuildPipeline(cfg, log),
	}, nil
}

// BuildPipeline assembles the fixed provider fallback chain: remote LLM,
// then remote inference API, then local inference, with the rule-based
// provider always last. Unconfigured providers stay in the chain and are
// skipped through their availability check.
func BuildPipeline(cfg config.Config, log *slog.Logger) *pipeline.Pipeline {
	providers := []provider.Provider{
		provider.WithBreaker(provider.NewOpenAI(cfg.OpenAIKey, openai.ChatModel(cfg.OpenAIModel), cfg.MaxContentLength)),
		provider.WithBreaker(provider.NewHFAPI(cfg.HFAPIKey, cfg.HFBaseURL, cfg.HFSummaryModel, cfg.HFQAModel)),
	}
	if cfg.UseLocalModel {
		providers = append(providers, provider.NewLocal(cfg.LocalModelURL, cfg.LocalModel, cfg.MaxContentLength))
	}
	providers = append(providers, provider.NewRuleBased())

	for _, p := range providers {
		log.Info("provider registered", "provider", p.Name(), "available", p.Available())
	}
	return pipeline.New(log, pipeline.NewChain(providers...), cfg.MaxTagCount)
}

func buildStore(cfg config.Config, log *slog.Logger) (store.Store, error) {
	if cfg.DBURL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}
	db, err := store.NewPostgres(cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
	}
	log.Info("using Postgres store")
	return db, nil
}

func buildQueue(cfg config.Config, log *slog.Logger) (queue.Queue, error) {
	if cfg.QueueURL == "" {
		return nil, fmt.Errorf("QUEUE_URL is required")
	}
	nc, err := nats.Connect(cfg.QueueURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Info("using NATS queue")
	return queue.NewNATS(log, nc), nil
}

// buildCache prefers Redis and degrades to a no-op cache so answer lookups
// still work without one.
func buildCache(cfg config.Config, log *slog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		log.Info("no REDIS_ADDR configured, answer caching disabled")
		return cache.NewNoOpCache()
	}
	c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn("redis unavailable, answer caching disabled", "err", err)
		return cache.NewNoOpCache()
	}
	log.Info("using Redis answer cache")
	return c
}
