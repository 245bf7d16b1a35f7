package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := writeTempFile(t, "config.json", `{
		"app": {
			"jwt_secret": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"password_hash_cost": 12,
			"log_level": "info"
		},
		"server": {
			"http_address": "localhost:8080",
			"read_timeout": "2s",
			"write_timeout": "4s",
			"shutdown_timeout": "8s",
			"max_body_bytes": 4096,
			"status_policy": "mirror"
		},
		"storage": {
			"db": { "driver": "sqlite3", "dsn": "file:trackflow.db", "max_open_conns": 1, "max_idle_conns": 1 }
		},
		"adapter": { "http_address": "http://localhost:8080", "request_timeout": 5000000000 }
	}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.JWTSecret)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 4*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 8*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(4096), cfg.Server.MaxBodyBytes)
	assert.Equal(t, StatusPolicyMirror, cfg.Server.StatusPolicy)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:trackflow.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 1, cfg.Storage.DB.MaxOpenConns)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeTempFile(t, "config.json", `{"app": {"token_duration": "a week"}}`)

	_, err := parseJSON(p)

	assert.Error(t, err)
}

func TestDuration_RejectsNonScalar(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte(`{"h":1}`)))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
