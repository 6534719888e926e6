package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"leetpick/internal/domain/apperr"
)

const (
	// SessionEnvKey holds the LeetCode session cookie value.
	SessionEnvKey = "LEETCODE_SESSION"
	// LambdaRunMode selects the cloud function entry point.
	LambdaRunMode = "AWS_LAMBDA"

	defaultGraphQLEndpoint = "https://leetcode.com/graphql"
	defaultTimeout         = 30 * time.Second
)

// Config contains runtime configuration values.
type Config struct {
	SessionToken      string        `envconfig:"LEETCODE_SESSION"`
	CSRFToken         string        `envconfig:"LEETCODE_CSRF_TOKEN"`
	DiscordWebhookURL string        `envconfig:"DISCORD_WEBHOOK_URL_KEY"`
	SlackWebhookURL   string        `envconfig:"SLACK_WEBHOOK_URL"`
	RunMode           string        `envconfig:"RUN_MODE"`
	GraphQLEndpoint   string        `envconfig:"LEETCODE_GRAPHQL_ENDPOINT" default:"https://leetcode.com/graphql"`
	RequestTimeout    time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ScheduleCron      string        `envconfig:"SCHEDULE_CRON"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment    bool          `envconfig:"LOG_DEVELOPMENT"`
}

// Load builds a Config from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, apperr.Configuration("parse environment", err)
	}

	if cfg.GraphQLEndpoint == "" {
		cfg.GraphQLEndpoint = defaultGraphQLEndpoint
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the credentials needed for a run are present.
func (c *Config) Validate() error {
	if c.SessionToken == "" {
		return apperr.Configuration("missing required credential "+SessionEnvKey, nil)
	}
	return nil
}

// LambdaMode reports whether the process should serve cloud function events.
func (c *Config) LambdaMode() bool {
	return c.RunMode == LambdaRunMode
}
