package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the outbound clients and the background workers.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"6m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single API request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"5m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the browser origins allowed to call the API. Empty allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"exposure" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Probe configures the HTTP probes sent to candidate subdomains and endpoints
	Probe struct {
		SubdomainTimeout      time.Duration `env:"PROBE_SUBDOMAIN_TIMEOUT" env-default:"5s" yaml:"subdomainTimeout"`
		EndpointTimeout       time.Duration `env:"PROBE_ENDPOINT_TIMEOUT" env-default:"10s" yaml:"endpointTimeout"`
		SubdomainMaxRedirects int           `env:"PROBE_SUBDOMAIN_MAX_REDIRECTS" env-default:"5" yaml:"subdomainMaxRedirects"` //nolint: lll
		EndpointMaxRedirects  int           `env:"PROBE_ENDPOINT_MAX_REDIRECTS" env-default:"3" yaml:"endpointMaxRedirects"`
		UserAgent             string        `env:"PROBE_USER_AGENT" env-default:"Surface-Checker/1.0" yaml:"userAgent"`
		// Concurrency bounds the in-flight probes of one discovery stage
		Concurrency int `env:"PROBE_CONCURRENCY" env-default:"8" yaml:"concurrency"`
	} `yaml:"probe"`

	// Shodan configures host enrichment. Enrichment is skipped without an API key.
	Shodan struct {
		APIKey  string        `env:"SHODAN_API_KEY" yaml:"apiKey"`
		BaseURL string        `env:"SHODAN_BASE_URL" env-default:"https://api.shodan.io" yaml:"baseURL"`
		Delay   time.Duration `env:"SHODAN_DELAY" env-default:"1s" yaml:"delay"`
		Timeout time.Duration `env:"SHODAN_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"shodan"`

	// HIBP configures the breach database client
	HIBP struct {
		APIKey    string `env:"HIBP_API_KEY" yaml:"apiKey"`
		BaseURL   string `env:"HIBP_BASE_URL" env-default:"https://haveibeenpwned.com/api/v3" yaml:"baseURL"`
		UserAgent string `env:"HIBP_USER_AGENT" env-default:"Surface-Checker/1.0" yaml:"userAgent"`
		// RequestDelay paces consecutive breach detail fetches
		RequestDelay time.Duration `env:"HIBP_REQUEST_DELAY" env-default:"1500ms" yaml:"requestDelay"`
		Timeout      time.Duration `env:"HIBP_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"hibp"`

	// Slack configures drift alerts. Alerts are disabled without a webhook.
	Slack struct {
		WebhookURL string `env:"SLACK_WEBHOOK_URL" yaml:"webhookURL"`
	} `yaml:"slack"`

	Monitor struct {
		// RescanInterval is how long a scanned domain stays fresh
		RescanInterval time.Duration `env:"MONITOR_RESCAN_INTERVAL" env-default:"24h" yaml:"rescanInterval"`
		// SweepInterval is how often stale domains are looked up and queued
		SweepInterval     time.Duration `env:"MONITOR_SWEEP_INTERVAL" env-default:"1h" yaml:"sweepInterval"`
		SweepBatchSize    uint          `env:"MONITOR_SWEEP_BATCH_SIZE" env-default:"100" yaml:"sweepBatchSize"`
		RescanMaxAttempts int           `env:"MONITOR_RESCAN_MAX_ATTEMPTS" env-default:"3" yaml:"rescanMaxAttempts"`
	} `yaml:"monitor"`

	Breach struct {
		// MaxAttempts is the maximum number of attempts of a queued breach check
		MaxAttempts int `env:"BREACH_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// UniqueJobPeriod drops a second queued check for the same user within this window
		UniqueJobPeriod time.Duration `env:"BREACH_UNIQUE_JOB_PERIOD" env-default:"10m" yaml:"uniqueJobPeriod"`
	} `yaml:"breach"`

	Worker struct {
		// MaxWorkers limits the number of jobs that run concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
