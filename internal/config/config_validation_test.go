package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"defaults with required fields", func(cfg *StructuredConfig) {}, nil},
		{"sqlite driver", func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }, nil},
		{"mirror policy", func(cfg *StructuredConfig) { cfg.Server.StatusPolicy = StatusPolicyMirror }, nil},
		{"empty jwt secret", func(cfg *StructuredConfig) { cfg.App.JWTSecret = "" }, ErrInvalidAppConfigs},
		{"zero token duration", func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"negative token duration", func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Second }, ErrInvalidAppConfigs},
		{"hash cost too low", func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 3 }, ErrInvalidAppConfigs},
		{"hash cost too high", func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 }, ErrInvalidAppConfigs},
		{"empty dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"unknown driver", func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, ErrInvalidStorageConfigs},
		{"unknown status policy", func(cfg *StructuredConfig) { cfg.Server.StatusPolicy = "teapot" }, ErrInvalidServerConfigs},
		{"zero body limit", func(cfg *StructuredConfig) { cfg.Server.MaxBodyBytes = 0 }, ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.App.JWTSecret = "secret"
			cfg.Storage.DB.DSN = "postgres://localhost/trackflow"
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

func TestSmokeConfig_Validate(t *testing.T) {
	assert.NoError(t, (&SmokeConfig{Adapter: Adapter{HTTPAddress: "http://localhost:3000", RequestTimeout: time.Second}}).validate())
	assert.ErrorIs(t, (&SmokeConfig{Adapter: Adapter{RequestTimeout: time.Second}}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&SmokeConfig{Adapter: Adapter{HTTPAddress: "http://localhost:3000"}}).validate(), ErrInvalidAdapterConfigs)
}

func TestGetSmokeConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://env:3000")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "3s")

	cfg, err := getSmokeConfig([]string{"-server-url", "http://flags:3000"})

	assert.NoError(t, err)
	assert.Equal(t, "http://flags:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetSmokeConfig_Defaults(t *testing.T) {
	cfg, err := getSmokeConfig(nil)

	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}
