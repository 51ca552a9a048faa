package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Ingestion   IngestionConfig `mapstructure:"ingestion"`
	AI          AIConfig        `mapstructure:"ai"`
	Storage     StorageConfig   `mapstructure:"storage"`
	Inbox       InboxConfig     `mapstructure:"inbox"`
	Auth        AuthConfig      `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	MaxUploadBytes    int64         `mapstructure:"maxUploadBytes"`
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	TxMaxRetries    int           `mapstructure:"txMaxRetries"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// IngestionConfig contains batch ingestion settings
type IngestionConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// AIConfig contains settings for the model-backed classifier
type AIConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	APIKey     string        `mapstructure:"apiKey"`
	Model      string        `mapstructure:"model"`
	Timeout    time.Duration `mapstructure:"timeout"` // seconds
	MaxRetries int           `mapstructure:"maxRetries"`
	RetryDelay time.Duration `mapstructure:"retryDelay"` // milliseconds
}

// StorageConfig selects where raw upload content is kept
type StorageConfig struct {
	Driver    string `mapstructure:"driver"` // gcs, local or none
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	LocalPath string `mapstructure:"localPath"`
}

// InboxConfig configures the drop-folder CSV ingester
type InboxConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Dir      string        `mapstructure:"dir"`
	EntityID string        `mapstructure:"entityId"`
	Debounce time.Duration `mapstructure:"debounce"` // milliseconds
}

// AuthConfig configures bearer token verification
type AuthConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	HMACSecret string `mapstructure:"hmacSecret"`
	Issuer     string `mapstructure:"issuer"`
}
