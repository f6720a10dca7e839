package config

import "time"

// AppConfig holds the global engine configuration
type AppConfig struct {
	UserAgent           string           `yaml:"user_agent,omitempty"`
	NumCrawlWorkers     int              `yaml:"num_crawl_workers,omitempty"`
	MaxRequests         int              `yaml:"max_requests,omitempty"`
	DelayPerHost        time.Duration    `yaml:"delay_per_host,omitempty"`
	MaxRetries          int              `yaml:"max_retries,omitempty"`
	InitialRetryDelay   time.Duration    `yaml:"initial_retry_delay,omitempty"`
	MaxRetryDelay       time.Duration    `yaml:"max_retry_delay,omitempty"`
	RunTimeout          time.Duration    `yaml:"run_timeout,omitempty"` // Overall deadline for one analysis run (0 = none)
	CrawlPageCap        int              `yaml:"crawl_page_cap,omitempty"`
	MaxSitemaps         int              `yaml:"max_sitemaps,omitempty"`
	MaxCompetitors      int              `yaml:"max_competitors,omitempty"`
	ReferenceCompetitor string           `yaml:"reference_competitor,omitempty"`
	MaxBodyBytes        int64            `yaml:"max_body_bytes,omitempty"`
	RespectRobots       *bool            `yaml:"respect_robots,omitempty"` // nil defaults to true
	HTTPClientSettings  HTTPClientConfig `yaml:"http_client_settings,omitempty"`
}

// HTTPClientConfig holds settings for the shared HTTP client
type HTTPClientConfig struct {
	Timeout               time.Duration `yaml:"timeout,omitempty"`
	MaxIdleConns          int           `yaml:"max_idle_conns,omitempty"`
	MaxIdleConnsPerHost   int           `yaml:"max_idle_conns_per_host,omitempty"`
	IdleConnTimeout       time.Duration `yaml:"idle_conn_timeout,omitempty"`
	TLSHandshakeTimeout   time.Duration `yaml:"tls_handshake_timeout,omitempty"`
	ExpectContinueTimeout time.Duration `yaml:"expect_continue_timeout,omitempty"`
	ForceAttemptHTTP2     *bool         `yaml:"force_attempt_http2,omitempty"` // nil=default, true=force, false=disable
	DialerTimeout         time.Duration `yaml:"dialer_timeout,omitempty"`
	DialerKeepAlive       time.Duration `yaml:"dialer_keep_alive,omitempty"`
}

// EffectiveRespectRobots resolves the robots toggle; honoring robots.txt
// disallow directives is the default
func (c *AppConfig) EffectiveRespectRobots() bool {
	if c.RespectRobots != nil {
		return *c.RespectRobots
	}
	return true
}
