package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Driver:        "postgres",
		Host:          "localhost",
		Port:          5432,
		Username:      "app",
		Database:      "txn",
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  time.Second,
		LogLevel:      "info",
		RetryAttempts: 1,
		TxRetry:       DefaultRetryConfig(),
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing host", mutate: func(c *Config) { c.Host = "" }, wantErr: "host"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "port"},
		{name: "unsupported driver", mutate: func(c *Config) { c.Driver = "mysql" }, wantErr: "driver"},
		{name: "bad ssl mode", mutate: func(c *Config) { c.SSLMode = "maybe" }, wantErr: "SSL"},
		{name: "zero timeout", mutate: func(c *Config) { c.QueryTimeout = 0 }, wantErr: "timeout"},
		{name: "no transaction attempts", mutate: func(c *Config) { c.TxRetry.MaxRetries = 0 }, wantErr: "transaction attempts"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := validConfig()
	c.Password = "secret"
	assert.Equal(t, "host=localhost port=5432 user=app password=secret dbname=txn sslmode=disable", c.DSN())
}

func TestCreateConfigFromViperConfig(t *testing.T) {
	t.Setenv("TC_DB_HOST", "")
	t.Setenv("TC_DB_PORT", "")
	t.Setenv("TC_DB_USERNAME", "")
	t.Setenv("TC_DB_NAME", "")

	conf := &config.Config{
		Database: config.DatabaseConfig{
			Host:         "db.internal",
			Port:         "6543",
			Username:     "svc",
			Database:     "ledger",
			SSLMode:      "require",
			MaxOpenConns: 40,
			QueryTimeout: 3 * time.Second,
			TxMaxRetries: 7,
		},
		Logger: config.LoggerConfig{Level: "warn"},
	}

	dbConf := CreateConfigFromViperConfig(conf)

	assert.Equal(t, "db.internal", dbConf.Host)
	assert.Equal(t, 6543, dbConf.Port)
	assert.Equal(t, "svc", dbConf.Username)
	assert.Equal(t, "ledger", dbConf.Database)
	assert.Equal(t, "require", dbConf.SSLMode)
	assert.Equal(t, 40, dbConf.MaxOpenConns)
	assert.Equal(t, 3*time.Second, dbConf.QueryTimeout)
	assert.Equal(t, 7, dbConf.TxRetry.MaxRetries)
	assert.Equal(t, "warn", dbConf.LogLevel)
}

func TestCreateConfigFromViperConfig_EnvWins(t *testing.T) {
	t.Setenv("TC_DB_HOST", "env-host")
	t.Setenv("TC_DB_PORT", "5433")

	dbConf := CreateConfigFromViperConfig(&config.Config{
		Database: config.DatabaseConfig{Host: "file-host", Port: "6543"},
	})

	assert.Equal(t, "env-host", dbConf.Host)
	assert.Equal(t, 5433, dbConf.Port)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("0"))
	assert.Equal(t, 0, ParsePort("70000"))
}
