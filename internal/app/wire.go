package app

import (
	"context"
	"log/slog"

	httpadapter "todoctl/internal/adapters/http"
	"todoctl/internal/adapters/terminal"
	"todoctl/internal/config"
	"todoctl/internal/logging"
	"todoctl/internal/services/tasks"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *config.Config, opts *Options) (*App, error) {
	// Create logger.
	level := cfg.LogLevel
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewLogger(logging.Config{
		Level:  level,
		Format: cfg.LogFormat,
		Output: opts.Stderr,
	})

	// Create HTTP adapter.
	httpAdapter := httpadapter.NewAdapter(httpadapter.Options{
		Timeout:            cfg.Timeout,
		InsecureSkipVerify: cfg.InsecureSkipTLS,
		RateLimit:          cfg.RateLimit,
		RateBurst:          cfg.RateBurst,
		UserAgent:          opts.UserAgent,
	}, logger)

	// Create task client bound to the configured collection.
	taskClient, err := tasks.NewClient(cfg.Endpoint(), httpAdapter, logger)
	if err != nil {
		return nil, err
	}

	// Create confirmation prompt.
	confirmer := terminal.NewAdapter(opts.Stdin, opts.Stderr)

	// Log configuration details.
	logger.DebugContext(ctx, "Initializing todoctl with configuration",
		"endpoint", cfg.Endpoint(),
		"logLevel", level.String(),
		"timeout", cfg.Timeout,
		"rateLimit", cfg.RateLimit)

	return &App{
		TaskClient: taskClient,
		Confirmer:  confirmer,
		Logger:     logger,
		Config:     cfg,
		Options:    opts,
	}, nil
}
