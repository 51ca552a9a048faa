package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "TC"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, *viper.Viper, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	config, err := Decode(v)
	if err != nil {
		return nil, nil, err
	}
	config.Environment = env

	return config, v, nil
}

// Decode unmarshals viper settings into a Config and converts numeric durations
func Decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	processDurations(&config)
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 60)      // seconds, batch uploads classify inline
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 15)   // seconds
	v.SetDefault("server.maxUploadBytes", 10<<20)
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 10)    // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.txMaxRetries", 5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("ingestion.concurrency", 8)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.timeout", 10) // seconds
	v.SetDefault("ai.maxRetries", 2)
	v.SetDefault("ai.retryDelay", 500) // milliseconds

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.localPath", "./data/uploads")

	v.SetDefault("inbox.enabled", false)
	v.SetDefault("inbox.dir", "./data/inbox")
	v.SetDefault("inbox.debounce", 500) // milliseconds

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.issuer", "txn-categorizer")
}

// getEnvironment determines the environment to use based on TC_ENV
func getEnvironment() string {
	env := os.Getenv("TC_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"TC_DB_HOST":            "database.host",
		"TC_DB_PORT":            "database.port",
		"TC_DB_USERNAME":        "database.username",
		"TC_DB_PASSWORD":        "database.password",
		"TC_DB_NAME":            "database.database",
		"TC_DB_SSL_MODE":        "database.sslMode",
		"TC_SERVER_HOST":        "server.host",
		"TC_SERVER_PORT":        "server.port",
		"TC_LOGGER_LEVEL":       "logger.level",
		"TC_AI_API_KEY":         "ai.apiKey",
		"TC_AI_MODEL":           "ai.model",
		"TC_STORAGE_DRIVER":     "storage.driver",
		"TC_STORAGE_BUCKET":     "storage.bucket",
		"TC_STORAGE_PREFIX":     "storage.prefix",
		"TC_STORAGE_LOCAL_PATH": "storage.localPath",
		"TC_INBOX_DIR":          "inbox.dir",
		"TC_INBOX_ENTITY_ID":    "inbox.entityId",
		"TC_AUTH_HMAC_SECRET":   "auth.hmacSecret",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt("TC_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("TC_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("TC_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("TC_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if concurrency := getEnvInt("TC_INGESTION_CONCURRENCY", 0); concurrency > 0 {
		v.Set("ingestion.concurrency", concurrency)
	}
	if timeout := getEnvInt("TC_AI_TIMEOUT_SECONDS", 0); timeout > 0 {
		v.Set("ai.timeout", timeout)
	}

	boolOverrides := map[string]string{
		"TC_AI_ENABLED":    "ai.enabled",
		"TC_INBOX_ENABLED": "inbox.enabled",
		"TC_AUTH_ENABLED":  "auth.enabled",
	}
	for env, key := range boolOverrides {
		if value := os.Getenv(env); value != "" {
			if enabled, err := strconv.ParseBool(value); err == nil {
				v.Set(key, enabled)
			}
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.AI.Timeout = time.Duration(config.AI.Timeout) * time.Second
	config.AI.RetryDelay = time.Duration(config.AI.RetryDelay) * time.Millisecond

	config.Inbox.Debounce = time.Duration(config.Inbox.Debounce) * time.Millisecond
}
