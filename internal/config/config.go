package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Search    SearchConfig    `yaml:"search"`
	Feed      FeedConfig      `yaml:"feed"`
	Social    SocialConfig    `yaml:"social"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	// QueryTimeout bounds a single request's store round trips. Zero disables it.
	QueryTimeout time.Duration `yaml:"query_timeout" env:"DATABASE_QUERY_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// the identity service; this backend only verifies them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"wayfarer"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for public read endpoints.
type RateLimitConfig struct {
	SearchPerMinute int           `yaml:"search_per_minute" env:"RATE_LIMIT_SEARCH_PER_MINUTE" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// SearchConfig holds experience discovery defaults.
type SearchConfig struct {
	DefaultRadiusKm float64 `yaml:"default_radius_km"  env:"SEARCH_DEFAULT_RADIUS_KM"  env-default:"25"`
	NearbyRadiusKm  float64 `yaml:"nearby_radius_km"   env:"SEARCH_NEARBY_RADIUS_KM"   env-default:"10"`
	DefaultPageSize int     `yaml:"default_page_size"  env:"SEARCH_DEFAULT_PAGE_SIZE"  env-default:"20"`
	MaxPageSize     int     `yaml:"max_page_size"      env:"SEARCH_MAX_PAGE_SIZE"      env-default:"100"`
	NearbyLimit     int     `yaml:"nearby_limit"       env:"SEARCH_NEARBY_LIMIT"       env-default:"50"`
	ReviewsPageSize int     `yaml:"reviews_page_size"  env:"SEARCH_REVIEWS_PAGE_SIZE"  env-default:"10"`
}

// FeedConfig holds post feed pagination defaults.
type FeedConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"FEED_DEFAULT_PAGE_SIZE" env-default:"10"`
	MaxPageSize     int `yaml:"max_page_size"     env:"FEED_MAX_PAGE_SIZE"     env-default:"100"`
}

// SocialConfig holds pagination defaults for comment and follow lists.
type SocialConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"SOCIAL_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"SOCIAL_MAX_PAGE_SIZE"     env-default:"100"`
}
