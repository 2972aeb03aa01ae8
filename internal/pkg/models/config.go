package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Backend     BackendConfig
	NATS        NATSConfig
	JWT         JWTConfig
	Countdown   CountdownConfig
	Tracking    TrackingConfig
	Geolocation GeolocationConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains the dashboard HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// BackendConfig contains the marketplace REST backend configuration
type BackendConfig struct {
	BaseURL   string
	Timeout   int // in seconds
	AuthToken string
}

// NATSConfig contains realtime channel connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// CountdownConfig controls the provider-acceptance waiting window
type CountdownConfig struct {
	Seconds      int // initial countdown value, 120 by default
	TickInterval int // tick interval in milliseconds, 1000 by default
}

// TrackingConfig contains location relay configuration
type TrackingConfig struct {
	PublishInterval int // seconds between provider position fixes
}

// GeolocationConfig points at the device position source
type GeolocationConfig struct {
	SourceURL string
	Timeout   int // in seconds
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
