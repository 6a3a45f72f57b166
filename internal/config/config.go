package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. Values are read
// from a YAML file and can be overridden with environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, test)
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
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS and websocket upgrades.
		// "*" allows any origin; browser extension origins look like chrome-extension://<id>.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"phishguard" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair used to authenticate API clients.
	JWT struct {
		// PublicKey verifies bearer tokens. API authentication is disabled when empty.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens minted by the jwt command.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Worker configures the background job queue.
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"50" yaml:"maxWorkers"`
		// CookieMergeAttempts is the maximum number of attempts of a cookie merge job
		CookieMergeAttempts int `env:"WORKER_COOKIE_MERGE_ATTEMPTS" env-default:"3" yaml:"cookieMergeAttempts"`
		// RefreshAttempts is the maximum number of attempts of a blacklist refresh job
		RefreshAttempts int `env:"WORKER_REFRESH_ATTEMPTS" env-default:"3" yaml:"refreshAttempts"`
	} `yaml:"worker"`

	// Detector configures the check pipeline.
	Detector struct {
		// SignalTimeout bounds every network-backed scorer of a single check
		SignalTimeout time.Duration `env:"DETECTOR_SIGNAL_TIMEOUT" env-default:"3s" yaml:"signalTimeout"`
		// CookieSettleDelay is how long to wait after a verdict before cookie telemetry is analyzed
		CookieSettleDelay time.Duration `env:"DETECTOR_COOKIE_SETTLE_DELAY" env-default:"2s" yaml:"cookieSettleDelay"`
		// SubscriberBuffer is the number of events buffered per event subscriber
		SubscriberBuffer int `env:"DETECTOR_SUBSCRIBER_BUFFER" env-default:"16" yaml:"subscriberBuffer"`
	} `yaml:"detector"`

	// Policy holds every weight and threshold of the score combination.
	Policy struct {
		HeuristicWeight float64 `env:"POLICY_HEURISTIC_WEIGHT" env-default:"1.0" yaml:"heuristicWeight"`
		CertWeight      float64 `env:"POLICY_CERT_WEIGHT"      env-default:"0.7" yaml:"certWeight"`
		MLWeight        float64 `env:"POLICY_ML_WEIGHT"        env-default:"0.8" yaml:"mlWeight"`
		// PhishingThreshold is the score a verdict must exceed to be phishing
		PhishingThreshold float64 `env:"POLICY_PHISHING_THRESHOLD" env-default:"65" yaml:"phishingThreshold"`
		// SuspiciousThreshold is the score a verdict must exceed to be suspicious
		SuspiciousThreshold float64 `env:"POLICY_SUSPICIOUS_THRESHOLD" env-default:"30" yaml:"suspiciousThreshold"`
		// AlertThreshold is the score a phishing verdict must exceed to raise an alert
		AlertThreshold     float64 `env:"POLICY_ALERT_THRESHOLD"      env-default:"85" yaml:"alertThreshold"`
		HeuristicReasonMin float64 `env:"POLICY_HEURISTIC_REASON_MIN" env-default:"40" yaml:"heuristicReasonMin"`
		CertReasonMin      float64 `env:"POLICY_CERT_REASON_MIN"      env-default:"30" yaml:"certReasonMin"`
		MLReasonMin        float64 `env:"POLICY_ML_REASON_MIN"        env-default:"35" yaml:"mlReasonMin"`
		// CookieMergeMin is the cookie score that must be exceeded for a merge to happen
		CookieMergeMin float64 `env:"POLICY_COOKIE_MERGE_MIN" env-default:"20" yaml:"cookieMergeMin"`
	} `yaml:"policy"`

	// Cache bounds the per-URL verdict cache.
	Cache struct {
		// Size is the maximum number of cached verdicts
		Size int `env:"CACHE_SIZE" env-default:"10000" yaml:"size"`
		// TTL is how long a verdict stays cached
		TTL time.Duration `env:"CACHE_TTL" env-default:"1h" yaml:"ttl"`
		// DegradedTTL is how long a verdict with unavailable signals stays cached
		DegradedTTL time.Duration `env:"CACHE_DEGRADED_TTL" env-default:"1m" yaml:"degradedTTL"`
	} `yaml:"cache"`

	// Blacklist configures the known-bad domain set.
	Blacklist struct {
		// FeedURL is a newline-delimited feed of phishing domains or URLs
		FeedURL string `env:"BLACKLIST_FEED_URL" env-default:"https://openphish.com/feed.txt" yaml:"feedURL"`
		// RefreshInterval is the period between feed refreshes
		RefreshInterval time.Duration `env:"BLACKLIST_REFRESH_INTERVAL" env-default:"60m" yaml:"refreshInterval"`
		// FetchTimeout bounds a single feed download
		FetchTimeout time.Duration `env:"BLACKLIST_FETCH_TIMEOUT" env-default:"30s" yaml:"fetchTimeout"`
		// FetchRetries is the number of retries of a failed download
		FetchRetries uint64 `env:"BLACKLIST_FETCH_RETRIES" env-default:"3" yaml:"fetchRetries"`
		// MaxFeedBytes rejects feeds larger than this size
		MaxFeedBytes int64 `env:"BLACKLIST_MAX_FEED_BYTES" env-default:"52428800" yaml:"maxFeedBytes"`
		// LocalList is an optional file of extra domains that is watched for changes
		LocalList string `env:"BLACKLIST_LOCAL_LIST" yaml:"localList"`
		// Allowlist holds domains or glob patterns (*.example.com) that are never blacklisted
		Allowlist []string `env:"BLACKLIST_ALLOWLIST" env-separator:"," yaml:"allowlist"`
	} `yaml:"blacklist"`

	// Certificate configures TLS certificate inspection.
	Certificate struct {
		// DialTimeout bounds the TLS handshake
		DialTimeout time.Duration `env:"CERTIFICATE_DIAL_TIMEOUT" env-default:"3s" yaml:"dialTimeout"`
		// FreeCAs lists issuer names of free, automated certificate authorities
		FreeCAs []string `env:"CERTIFICATE_FREE_CAS" env-default:"Let's Encrypt,ZeroSSL,SSL.com,cPanel,Cloudflare" env-separator:"," yaml:"freeCAs"` //nolint: lll
	} `yaml:"certificate"`

	// ML selects the risk estimator.
	ML struct {
		// Provider is either "heuristic" or "virustotal"
		Provider string `env:"ML_PROVIDER" env-default:"heuristic" yaml:"provider"`
		// PrimaryShare is the share of the signal timeout a remote provider may use
		// before the heuristic answers instead
		PrimaryShare float64 `env:"ML_PRIMARY_SHARE" env-default:"0.7" yaml:"primaryShare"`
		// VirusTotal configures the VirusTotal reputation provider
		VirusTotal struct {
			APIKey  string `env:"ML_VIRUSTOTAL_API_KEY" yaml:"apiKey"`
			BaseURL string `env:"ML_VIRUSTOTAL_BASE_URL" env-default:"https://www.virustotal.com" yaml:"baseURL"`
			// RequestsPerMinute throttles outgoing requests (public API keys allow 4)
			RequestsPerMinute int `env:"ML_VIRUSTOTAL_REQUESTS_PER_MINUTE" env-default:"4" yaml:"requestsPerMinute"`
		} `yaml:"virustotal"`
	} `yaml:"ml"`

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

// Defaults returns a Config filled from defaults and the environment only.
// It is used by commands that can run without a config file.
func Defaults() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}
