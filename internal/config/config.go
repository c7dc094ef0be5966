package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration. Values are read from a YAML file
// and can be overridden by environment variables.
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
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// RateLimit is the number of API requests a user may make per minute. Zero disables it.
		RateLimit int `env:"HTTP_RATE_LIMIT" env-default:"600" yaml:"rateLimit"`
		// AllowedOrigins lists the origins allowed to call the API from a browser. "*" allows any.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
		// RiverUIEnabled mounts the job queue dashboard under /riverui/
		RiverUIEnabled bool `env:"HTTP_RIVER_UI_ENABLED" env-default:"false" yaml:"riverUIEnabled"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"discovery" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair. Only the public key is needed to serve
	// requests; the private key is used by the jwt command.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY"  yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Proximity configures nearby search.
	Proximity struct {
		// CenterLat and CenterLon are used when a query has no coordinates.
		CenterLat float64 `env:"PROXIMITY_CENTER_LAT" env-default:"39.7392"   yaml:"centerLat"`
		CenterLon float64 `env:"PROXIMITY_CENTER_LON" env-default:"-104.9903" yaml:"centerLon"`
		// CacheTTL is how long a nearby result stays cached.
		CacheTTL time.Duration `env:"PROXIMITY_CACHE_TTL" env-default:"60s" yaml:"cacheTTL"`
		// CacheSize is the maximum number of cached nearby results.
		CacheSize int `env:"PROXIMITY_CACHE_SIZE" env-default:"1024" yaml:"cacheSize"`
	} `yaml:"proximity"`

	// Feed configures the ranking weights. Weights are normalized to sum to one.
	Feed struct {
		AffinityWeight   float64 `env:"FEED_AFFINITY_WEIGHT"   env-default:"0.30" yaml:"affinityWeight"`
		PopularityWeight float64 `env:"FEED_POPULARITY_WEIGHT" env-default:"0.20" yaml:"popularityWeight"`
		RecencyWeight    float64 `env:"FEED_RECENCY_WEIGHT"    env-default:"0.15" yaml:"recencyWeight"`
		SocialWeight     float64 `env:"FEED_SOCIAL_WEIGHT"     env-default:"0.15" yaml:"socialWeight"`
		ProximityWeight  float64 `env:"FEED_PROXIMITY_WEIGHT"  env-default:"0.10" yaml:"proximityWeight"`
		UrgencyWeight    float64 `env:"FEED_URGENCY_WEIGHT"    env-default:"0.10" yaml:"urgencyWeight"`
		// EventWindow limits the feed to events starting within this window.
		EventWindow time.Duration `env:"FEED_EVENT_WINDOW" env-default:"720h" yaml:"eventWindow"`
		// PoolSize caps the number of listings ranked per request.
		PoolSize int `env:"FEED_POOL_SIZE" env-default:"500" yaml:"poolSize"`
	} `yaml:"feed"`

	// Suggestions configures the suggestion pipeline.
	Suggestions struct {
		PoolSize       int           `env:"SUGGESTIONS_POOL_SIZE"        env-default:"200" yaml:"poolSize"`
		ShortlistSize  int           `env:"SUGGESTIONS_SHORTLIST_SIZE"   env-default:"30"  yaml:"shortlistSize"`
		Count          int           `env:"SUGGESTIONS_COUNT"            env-default:"10"  yaml:"count"`
		MaxPerCategory int           `env:"SUGGESTIONS_MAX_PER_CATEGORY" env-default:"3"   yaml:"maxPerCategory"`
		MaxPerVenue    int           `env:"SUGGESTIONS_MAX_PER_VENUE"    env-default:"2"   yaml:"maxPerVenue"`
		ExploreEvery   int           `env:"SUGGESTIONS_EXPLORE_EVERY"    env-default:"5"   yaml:"exploreEvery"`
		TTL            time.Duration `env:"SUGGESTIONS_TTL"              env-default:"6h"  yaml:"ttl"`
		// SweepInterval is how often active users get their suggestions refreshed.
		SweepInterval time.Duration `env:"SUGGESTIONS_SWEEP_INTERVAL" env-default:"1h" yaml:"sweepInterval"`
		// ActiveWindow defines "active" for the sweep.
		ActiveWindow time.Duration `env:"SUGGESTIONS_ACTIVE_WINDOW" env-default:"24h" yaml:"activeWindow"`
		// SweepLimit caps how many users a single sweep enqueues.
		SweepLimit  int `env:"SUGGESTIONS_SWEEP_LIMIT"  env-default:"500" yaml:"sweepLimit"`
		MaxAttempts int `env:"SUGGESTIONS_MAX_ATTEMPTS" env-default:"3"   yaml:"maxAttempts"`
		// RefreshPeriod is the window in which a user gets at most one generation.
		RefreshPeriod time.Duration `env:"SUGGESTIONS_REFRESH_PERIOD" env-default:"5m" yaml:"refreshPeriod"`
	} `yaml:"suggestions"`

	// Curator configures the language-model curator. When disabled, or when
	// it fails, suggestions are curated deterministically.
	Curator struct {
		Enabled bool   `env:"CURATOR_ENABLED"  env-default:"false"                     yaml:"enabled"`
		BaseURL string `env:"CURATOR_BASE_URL" env-default:"https://api.openai.com/v1" yaml:"baseURL"`
		Model   string `env:"CURATOR_MODEL"    env-default:"gpt-4o-mini"               yaml:"model"`
		APIKey  string `env:"CURATOR_API_KEY"                                           yaml:"apiKey"`
		// Timeout bounds a single curation request.
		Timeout time.Duration `env:"CURATOR_TIMEOUT" env-default:"20s" yaml:"timeout"`
		// RequestsPerMinute is the client-side rate limit.
		RequestsPerMinute int `env:"CURATOR_REQUESTS_PER_MINUTE" env-default:"60" yaml:"requestsPerMinute"`
		// FailureThreshold consecutive failures open the circuit breaker.
		FailureThreshold uint32 `env:"CURATOR_FAILURE_THRESHOLD" env-default:"5" yaml:"failureThreshold"`
		// OpenTimeout is how long the breaker stays open before probing again.
		OpenTimeout time.Duration `env:"CURATOR_OPEN_TIMEOUT" env-default:"1m" yaml:"openTimeout"`
	} `yaml:"curator"`

	// Worker configures background job processing.
	Worker struct {
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
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
