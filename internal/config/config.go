// Package config loads todoctl settings from flags, environment and the config file.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	apperrors "todoctl/internal/errors"
	"todoctl/internal/logging"
)

// Configuration keys.
const (
	KeyBaseURL         = "api.base_url"
	KeyTasksPath       = "api.tasks_path"
	KeyTimeout         = "http.timeout"
	KeyInsecureSkipTLS = "http.insecure_skip_tls"
	KeyRateLimit       = "http.rate_limit"
	KeyRateBurst       = "http.rate_burst"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
)

// EnvPrefix is prepended to every environment variable, e.g. TODO_API_BASE_URL.
const EnvPrefix = "TODO"

const (
	defaultTasksPath = "tasks"
	defaultTimeout   = 30 * time.Second
	defaultRateBurst = 1
)

// Config holds the resolved todoctl settings.
type Config struct {
	BaseURL         string
	TasksPath       string
	Timeout         time.Duration
	InsecureSkipTLS bool
	RateLimit       float64
	RateBurst       int
	LogLevel        slog.Level
	LogFormat       string
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTasksPath, defaultTasksPath)
	v.SetDefault(KeyTimeout, defaultTimeout)
	v.SetDefault(KeyInsecureSkipTLS, false)
	v.SetDefault(KeyRateLimit, 0)
	v.SetDefault(KeyRateBurst, defaultRateBurst)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatText)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	baseURL := strings.TrimSpace(v.GetString(KeyBaseURL))
	if baseURL == "" {
		return nil, apperrors.NewConfigurationError(KeyBaseURL, "",
			"API base URL is required (set TODO_API_BASE_URL or api.base_url in the config file)", nil)
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, apperrors.NewConfigurationError(KeyBaseURL, baseURL, "API base URL is not a valid URL", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, apperrors.NewConfigurationError(KeyBaseURL, baseURL,
			"API base URL must be an absolute http or https URL", nil)
	}

	level, err := logging.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, apperrors.NewConfigurationError(KeyLogLevel, v.GetString(KeyLogLevel), err.Error(), err)
	}

	format := strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat)))
	if !logging.IsValidFormat(format) {
		return nil, apperrors.NewConfigurationError(KeyLogFormat, format, "log format must be text or json", nil)
	}

	timeout := v.GetDuration(KeyTimeout)
	if timeout <= 0 {
		return nil, apperrors.NewConfigurationError(KeyTimeout, v.GetString(KeyTimeout), "timeout must be positive", nil)
	}

	rateLimit := v.GetFloat64(KeyRateLimit)
	if rateLimit < 0 {
		return nil, apperrors.NewConfigurationError(KeyRateLimit, v.GetString(KeyRateLimit),
			"rate limit must not be negative", nil)
	}

	return &Config{
		BaseURL:         baseURL,
		TasksPath:       v.GetString(KeyTasksPath),
		Timeout:         timeout,
		InsecureSkipTLS: v.GetBool(KeyInsecureSkipTLS),
		RateLimit:       rateLimit,
		RateBurst:       v.GetInt(KeyRateBurst),
		LogLevel:        level,
		LogFormat:       format,
	}, nil
}

// Endpoint returns the tasks collection URL: the base URL and tasks path joined by a single slash.
func (c *Config) Endpoint() string {
	base := strings.TrimRight(c.BaseURL, "/")
	path := strings.Trim(c.TasksPath, "/")
	if path == "" {
		return base
	}
	return fmt.Sprintf("%s/%s", base, path)
}
