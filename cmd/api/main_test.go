package main

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func validConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Server: config.ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Database: config.DatabaseConfig{
			Host:         "localhost",
			Port:         "5432",
			Username:     "postgres",
			Database:     "txn_categorizer",
			QueryTimeout: 10 * time.Second,
		},
		Logger:    config.LoggerConfig{Level: "info"},
		Ingestion: config.IngestionConfig{Concurrency: 8},
		Storage:   config.StorageConfig{Driver: "local", LocalPath: "./data/uploads"},
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "missing database host",
			mutate:  func(c *config.Config) { c.Database.Host = "" },
			wantErr: "database.host",
		},
		{
			name:    "ai enabled without key",
			mutate:  func(c *config.Config) { c.AI = config.AIConfig{Enabled: true, Timeout: time.Second} },
			wantErr: "ai.apiKey",
		},
		{
			name:    "gcs without bucket",
			mutate:  func(c *config.Config) { c.Storage = config.StorageConfig{Driver: "gcs"} },
			wantErr: "storage.bucket",
		},
		{
			name:    "unknown storage driver",
			mutate:  func(c *config.Config) { c.Storage.Driver = "s3" },
			wantErr: "invalid storage driver",
		},
		{
			name:    "inbox without entity",
			mutate:  func(c *config.Config) { c.Inbox = config.InboxConfig{Enabled: true, Dir: "./in"} },
			wantErr: "inbox.entityId",
		},
		{
			name:    "auth without secret",
			mutate:  func(c *config.Config) { c.Auth.Enabled = true },
			wantErr: "auth.hmacSecret",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *config.Config) { c.Environment = "staging" },
			wantErr: "invalid environment value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewBlobStore_None(t *testing.T) {
	store, closeFn, err := newBlobStore(t.Context(), config.StorageConfig{Driver: "none"}, nil)
	assert.NoError(t, err)
	assert.Nil(t, store)
	closeFn()
}
