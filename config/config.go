package config

import (
	"time"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	NewsSource NewsSourceConfig `json:"news_source"`
	RSS        RSSConfig        `json:"rss"`
	Jobs       JobsConfig       `json:"jobs"`
	Logging    LoggingConfig    `json:"logging"`
	HTTP       HTTPConfig       `json:"http"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	SSEInterval  time.Duration `json:"sse_interval" env:"SERVER_SSE_INTERVAL" default:"30s"`
}

// NewsSourceConfig selects and configures the remote article source.
// Mode is "api" (NewsAPI-style JSON endpoint) or "rss".
type NewsSourceConfig struct {
	Mode          string `json:"mode" env:"NEWS_SOURCE" default:"api"`
	BaseURL       string `json:"base_url" env:"NEWS_API_BASE_URL" default:"https://newsapi.org/v2/top-headlines"`
	APIKey        string `json:"-" env:"NEWS_API_KEY"`
	DefaultRegion string `json:"default_region" env:"NEWS_DEFAULT_REGION" default:"us"`
}

// RSSConfig maps region codes to feed URLs for the RSS source mode. The raw
// value is a comma-separated list of region=url pairs.
type RSSConfig struct {
	FeedMap string `json:"feed_map" env:"RSS_FEED_MAP"`
}

type JobsConfig struct {
	RefreshEnabled  bool          `json:"refresh_enabled" env:"JOB_REFRESH_ENABLED" default:"true"`
	RefreshInterval time.Duration `json:"refresh_interval" env:"JOB_REFRESH_INTERVAL" default:"30m"`
	RefreshTimeout  time.Duration `json:"refresh_timeout" env:"JOB_REFRESH_TIMEOUT" default:"5m"`
	RefreshRegions  string        `json:"refresh_regions" env:"JOB_REFRESH_REGIONS" default:"us"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout       time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
