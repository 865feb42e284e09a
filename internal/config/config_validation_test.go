package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	return cfg
}

func TestStructuredConfig_ValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"defaults plus sign key", func(*StructuredConfig) {}, nil},
		{"no dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no address", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"no sign key", func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"no status interval", func(cfg *StructuredConfig) { cfg.Workers.StatusInterval = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validateServer()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		cfg := defaultConfig()
		cfg.App.CompanyID = "acme"
		return newClientConfig(cfg)
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{"valid", func(*ClientConfig) {}, nil},
		{"no company", func(cfg *ClientConfig) { cfg.App.CompanyID = "" }, ErrInvalidAppConfigs},
		{"address without scheme", func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "localhost:8080" }, ErrInvalidAdapterConfigs},
		{"ftp scheme", func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "ftp://feed" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero refresh", func(cfg *ClientConfig) { cfg.Workers.RefreshInterval = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_CopiesClientFields(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{CompanyID: "acme", TokenSignKey: "server-only"},
		Adapter: Adapter{HTTPAddress: "http://feed", Token: "t", RequestTimeout: time.Second},
		Workers: Workers{RefreshInterval: time.Minute, StatusInterval: time.Second},
	}

	assert.Equal(t, &ClientConfig{
		App:     ClientApp{CompanyID: "acme"},
		Adapter: ClientAdapter{HTTPAddress: "http://feed", Token: "t", RequestTimeout: time.Second},
		Workers: ClientWorkers{RefreshInterval: time.Minute},
	}, newClientConfig(cfg))
}
