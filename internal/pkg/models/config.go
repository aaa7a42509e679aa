package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Travel   TravelConfig
	Geocode  GeocodeConfig
	Media    MediaConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// TravelConfig contains travel search specific configuration
type TravelConfig struct {
	SearchRadiusM float64 `json:"search_radius_m"` // Default radius in meters for proximity search
}

// GeocodeConfig contains geocoding collaborator configuration
type GeocodeConfig struct {
	BaseURL string
	APIKey  string
	Timeout int // in seconds
}

// MediaConfig contains media storage collaborator configuration
type MediaConfig struct {
	BaseURL   string
	APIKey    string
	PublicURL string
	Timeout   int // in seconds
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
