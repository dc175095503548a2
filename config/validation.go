package config

import (
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateNewsSourceConfig(&config.NewsSource); err != nil {
		return fmt.Errorf("news source config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	if err := validateJobsConfig(&config.Jobs); err != nil {
		return fmt.Errorf("jobs config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateNewsSourceConfig(config *NewsSourceConfig) error {
	mode := strings.ToLower(strings.TrimSpace(config.Mode))
	if mode != "api" && mode != "rss" {
		return fmt.Errorf("news source mode must be \"api\" or \"rss\", got %q", config.Mode)
	}
	config.Mode = mode

	if config.BaseURL == "" {
		return fmt.Errorf("news API base URL must not be empty")
	}

	// A missing API key is not a startup failure: the remote source reports
	// it as a configuration error per request so cached reads keep working.
	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error, got %q", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be json or text, got %q", config.Format)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.ClientTimeout <= 0 {
		return fmt.Errorf("client timeout must be positive, got %v", config.ClientTimeout)
	}

	if config.DialTimeout <= 0 {
		return fmt.Errorf("dial timeout must be positive, got %v", config.DialTimeout)
	}

	return nil
}

func validateJobsConfig(config *JobsConfig) error {
	if !config.RefreshEnabled {
		return nil
	}

	if config.RefreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", config.RefreshInterval)
	}

	if config.RefreshTimeout <= 0 {
		return fmt.Errorf("refresh timeout must be positive, got %v", config.RefreshTimeout)
	}

	return nil
}

// RefreshRegionList splits the configured comma-separated region codes.
func (c *JobsConfig) RefreshRegionList() []string {
	raw := strings.Split(c.RefreshRegions, ",")
	regions := make([]string, 0, len(raw))
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			regions = append(regions, r)
		}
	}
	return regions
}

// FeedURLs parses the region=url pairs configured for the RSS source mode.
func (c *RSSConfig) FeedURLs() map[string]string {
	urls := make(map[string]string)
	for _, pair := range strings.Split(c.FeedMap, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		region, url, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		region = strings.TrimSpace(region)
		url = strings.TrimSpace(url)
		if region != "" && url != "" {
			urls[region] = url
		}
	}
	return urls
}
