package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"todoctl/internal/config"
	"todoctl/internal/domain"
)

// App contains all application dependencies.
type App struct {
	// Task API access
	TaskClient domain.TaskClient

	// I/O dependencies
	Confirmer domain.Confirmer

	// Logging
	Logger *slog.Logger

	// Configuration
	Config  *config.Config
	Options *Options
}

// Options holds process-level settings that do not come from the config file.
type Options struct {
	Verbose   bool
	UserAgent string
	Stdin     io.Reader
	Stderr    io.Writer
}

// Option is a functional option for configuring the App.
type Option func(*Options)

// WithVerbose enables debug logging regardless of the configured level.
func WithVerbose(verbose bool) Option {
	return func(opts *Options) {
		opts.Verbose = verbose
	}
}

// WithUserAgent sets the User-Agent sent to the API.
func WithUserAgent(userAgent string) Option {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

// WithInput sets the reader used for confirmation prompts.
func WithInput(stdin io.Reader) Option {
	return func(opts *Options) {
		opts.Stdin = stdin
	}
}

// WithOutput sets the writer used for logs and prompts.
func WithOutput(stderr io.Writer) Option {
	return func(opts *Options) {
		opts.Stderr = stderr
	}
}

// NewApp creates a new App from cfg with the given options.
func NewApp(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &Options{
		Stdin:  os.Stdin,
		Stderr: os.Stderr,
	}

	// Apply options.
	for _, opt := range opts {
		opt(options)
	}

	return NewAppWithConfig(ctx, cfg, options)
}
