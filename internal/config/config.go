package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"90s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins; "*" allows any origin without credentials.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"*" yaml:"allowedOrigins"`
		// TrustProxyHeaders takes the client address from X-Forwarded-For or
		// X-Real-IP. Only enable it behind a proxy that sets them.
		TrustProxyHeaders bool `env:"HTTP_TRUST_PROXY_HEADERS" env-default:"false" yaml:"trustProxyHeaders"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// URL is a full postgres connection URL. When set it takes precedence
		// over the individual connection fields.
		URL string `env:"DATABASE_URL" yaml:"url"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"wcagrep" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// StatementTimeout aborts runaway queries server side; zero keeps the server default.
		StatementTimeout time.Duration `env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s" yaml:"statementTimeout"`
		// Tracing enables OpenTelemetry spans for every query.
		Tracing bool `env:"DATABASE_TRACING" env-default:"false" yaml:"tracing"`
	} `yaml:"database"`

	// JWT configures operator bearer tokens.
	JWT struct {
		// Required makes every /api route demand a bearer token or a client API key.
		Required bool `env:"JWT_REQUIRED" env-default:"false" yaml:"required"`
		// PublicKey is the PEM encoded RSA key used to verify tokens.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA key used by the jwt command to mint tokens.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Scanner configures the scan lifecycle.
	Scanner struct {
		// MaxAttempts is the number of times a scan job is tried before it fails.
		MaxAttempts int `env:"SCANNER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// Workers is the number of scan jobs processed concurrently by this process.
		Workers int `env:"SCANNER_WORKERS" env-default:"10" yaml:"workers"`
		// ScanTimeout bounds a single scan attempt, fetch and analysis included.
		ScanTimeout time.Duration `env:"SCANNER_SCAN_TIMEOUT" env-default:"2m" yaml:"scanTimeout"`
		// ReauditInterval is the default delay of a scheduled re-audit.
		ReauditInterval time.Duration `env:"SCANNER_REAUDIT_INTERVAL" env-default:"720h" yaml:"reauditInterval"`
	} `yaml:"scanner"`

	// Browser configures the page fetching backends.
	Browser struct {
		// UserAgent is sent by the HTTP backend.
		UserAgent string `env:"BROWSER_USER_AGENT" env-default:"wcagrep-auditor/1.0" yaml:"userAgent"`
		// MaxPageBytes limits the size of a fetched page.
		MaxPageBytes int64 `env:"BROWSER_MAX_PAGE_BYTES" env-default:"5242880" yaml:"maxPageBytes"`
		// HTTP is the plain HTTP backend.
		HTTP struct {
			Enabled    bool          `env:"BROWSER_HTTP_ENABLED" env-default:"true" yaml:"enabled"`
			Concurrent int           `env:"BROWSER_HTTP_CONCURRENT" env-default:"5" yaml:"concurrent"`
			DailyLimit int           `env:"BROWSER_HTTP_DAILY_LIMIT" env-default:"0" yaml:"dailyLimit"`
			Timeout    time.Duration `env:"BROWSER_HTTP_TIMEOUT" env-default:"30s" yaml:"timeout"`
		} `yaml:"http"`
		// Headless is the Chromium backend driven over the DevTools protocol.
		Headless struct {
			Enabled    bool          `env:"BROWSER_HEADLESS_ENABLED" env-default:"false" yaml:"enabled"`
			Concurrent int           `env:"BROWSER_HEADLESS_CONCURRENT" env-default:"2" yaml:"concurrent"`
			DailyLimit int           `env:"BROWSER_HEADLESS_DAILY_LIMIT" env-default:"500" yaml:"dailyLimit"`
			Timeout    time.Duration `env:"BROWSER_HEADLESS_TIMEOUT" env-default:"45s" yaml:"timeout"`
			// ControlURL connects to an already running browser. When empty a
			// local browser is launched.
			ControlURL string `env:"BROWSER_HEADLESS_CONTROL_URL" yaml:"controlUrl"`
			// Bin overrides the browser binary used when launching.
			Bin string `env:"BROWSER_HEADLESS_BIN" yaml:"bin"`
		} `yaml:"headless"`
	} `yaml:"browser"`

	// RateLimit configures the per-client request limits.
	RateLimit struct {
		QuickWinWindow     time.Duration `env:"RATE_LIMIT_QUICK_WIN_WINDOW" env-default:"1h" yaml:"quickWinWindow"`
		QuickWinMax        int           `env:"RATE_LIMIT_QUICK_WIN_MAX" env-default:"10" yaml:"quickWinMax"`
		AgentTriggerWindow time.Duration `env:"RATE_LIMIT_AGENT_TRIGGER_WINDOW" env-default:"1m" yaml:"agentTriggerWindow"`
		AgentTriggerMax    int           `env:"RATE_LIMIT_AGENT_TRIGGER_MAX" env-default:"5" yaml:"agentTriggerMax"`
	} `yaml:"rateLimit"`

	// Outreach configures email generation and the ethical guard.
	Outreach struct {
		// SenderAddress is the From address of outgoing mail.
		SenderAddress string `env:"OUTREACH_SENDER_ADDRESS" env-default:"audits@wcagrep.com" yaml:"senderAddress"`
		// SenderName signs the generated emails when the request does not name a sender.
		SenderName string `env:"OUTREACH_SENDER_NAME" env-default:"The wcagrep team" yaml:"senderName"`
		// UnsubscribeBaseURL prefixes unsubscribe links.
		UnsubscribeBaseURL string `env:"OUTREACH_UNSUBSCRIBE_BASE_URL" env-default:"https://wcagrep.com" yaml:"unsubscribeBaseUrl"` //nolint: lll
		// MaxTouchesPerProspect caps the emails sent to one prospect.
		MaxTouchesPerProspect int `env:"OUTREACH_MAX_TOUCHES" env-default:"4" yaml:"maxTouchesPerProspect"`
		// MinTimeBetweenTouches is the minimum delay between two emails to one prospect.
		MinTimeBetweenTouches time.Duration `env:"OUTREACH_MIN_TIME_BETWEEN_TOUCHES" env-default:"72h" yaml:"minTimeBetweenTouches"` //nolint: lll
		// PDFTimeout bounds the generation of an audit PDF.
		PDFTimeout time.Duration `env:"OUTREACH_PDF_TIMEOUT" env-default:"30s" yaml:"pdfTimeout"`
		// SMTP configures mail delivery. Delivery is disabled when Host is empty.
		SMTP struct {
			Host     string `env:"SMTP_HOST" yaml:"host"`
			Port     int    `env:"SMTP_PORT" env-default:"587" yaml:"port"`
			Username string `env:"SMTP_USERNAME" yaml:"username"`
			Password string `env:"SMTP_PASSWORD" yaml:"password"`
		} `yaml:"smtp"`
	} `yaml:"outreach"`

	// LLM configures the optional language model used to polish generated copy.
	LLM struct {
		// APIKey enables the model when set.
		APIKey string `env:"ANTHROPIC_API_KEY" yaml:"apiKey"`
		// Model is the model identifier.
		Model string `env:"LLM_MODEL" env-default:"claude-sonnet-4-5" yaml:"model"`
		// MaxTokens bounds a single completion.
		MaxTokens int64 `env:"LLM_MAX_TOKENS" env-default:"1024" yaml:"maxTokens"`
		// Timeout bounds a single completion.
		Timeout time.Duration `env:"LLM_TIMEOUT" env-default:"45s" yaml:"timeout"`
	} `yaml:"llm"`

	// Files configures where generated artifacts are written.
	Files struct {
		MockupsDir string `env:"FILES_MOCKUPS_DIR" env-default:"mockups" yaml:"mockupsDir"`
		ReportsDir string `env:"FILES_REPORTS_DIR" env-default:"reports" yaml:"reportsDir"`
	} `yaml:"files"`

	// Discovery configures the prospect search.
	Discovery struct {
		// SearchURL is the HTML search endpoint queried per keyword.
		SearchURL string `env:"DISCOVERY_SEARCH_URL" env-default:"https://html.duckduckgo.com/html/" yaml:"searchUrl"`
		// CacheTTL is how long search results are reused for the same query.
		CacheTTL time.Duration `env:"DISCOVERY_CACHE_TTL" env-default:"6h" yaml:"cacheTtl"`
		// Concurrency bounds parallel searches.
		Concurrency int `env:"DISCOVERY_CONCURRENCY" env-default:"4" yaml:"concurrency"`
	} `yaml:"discovery"`

	// Monitor configures website health checks.
	Monitor struct {
		CacheTTL    time.Duration `env:"MONITOR_CACHE_TTL" env-default:"5m" yaml:"cacheTtl"`
		Timeout     time.Duration `env:"MONITOR_TIMEOUT" env-default:"10s" yaml:"timeout"`
		Concurrency int           `env:"MONITOR_CONCURRENCY" env-default:"8" yaml:"concurrency"`
	} `yaml:"monitor"`

	// Agents configures the background planner and executor.
	Agents struct {
		PlannerInterval  time.Duration `env:"AGENTS_PLANNER_INTERVAL" env-default:"1h" yaml:"plannerInterval"`
		ExecutorInterval time.Duration `env:"AGENTS_EXECUTOR_INTERVAL" env-default:"15m" yaml:"executorInterval"`
		PlannerBatchSize int           `env:"AGENTS_PLANNER_BATCH_SIZE" env-default:"20" yaml:"plannerBatchSize"`
	} `yaml:"agents"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml file at configPath with environment variables taking
// precedence. An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Validate reports every missing or inconsistent setting that would prevent
// the service from starting.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.URL != "" {
		if !strings.HasPrefix(c.Database.URL, "postgres://") && !strings.HasPrefix(c.Database.URL, "postgresql://") {
			errs = append(errs, errors.New("DATABASE_URL must be a postgres:// or postgresql:// URL"))
		}
	} else if c.Database.Host == "" || c.Database.DatabaseName == "" {
		errs = append(errs, errors.New("database host and name are required when DATABASE_URL is not set"))
	}
	if c.JWT.Required && c.JWT.PublicKey == "" {
		errs = append(errs, errors.New("JWT_PUBLIC_KEY is required when jwt.required is enabled"))
	}
	if !c.Browser.HTTP.Enabled && !c.Browser.Headless.Enabled {
		errs = append(errs, errors.New("at least one browser backend must be enabled"))
	}
	if c.Scanner.MaxAttempts < 1 {
		errs = append(errs, errors.New("scanner.maxAttempts must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}
