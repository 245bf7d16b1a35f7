package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// requiredOnly carries the two settings that have no default.
func requiredOnly() *StructuredConfig {
	return &StructuredConfig{
		App:     App{JWTSecret: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/trackflow"}},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_AppliesDefaults verifies that every field left empty by the
// sources takes its default value.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, requiredOnly())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.JWTSecret)
	assert.Equal(t, "trackflow-server", cfg.App.TokenIssuer)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, "debug", cfg.App.LogLevel)

	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(1048576), cfg.Server.MaxBodyBytes)
	assert.Equal(t, StatusPolicyAlwaysOK, cfg.Server.StatusPolicy)

	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, 10, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 4, cfg.Storage.DB.MaxIdleConns)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later config
// overrides an earlier one while zero fields never erase earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		requiredOnly(),
		&StructuredConfig{App: App{TokenIssuer: "first"}, Server: Server{HTTPAddress: ":8080"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.App.JWTSecret)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_ReturnsValidationError(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.NotErrorIs(t, err, ErrInvalidServerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "env-secret")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("SERVER_STATUS_POLICY", "mirror")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", "file:test.db")

	b := newConfigBuilder(nil)
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.JWTSecret)
	assert.Equal(t, 2*time.Hour, b.configs[0].App.TokenDuration)
	assert.Equal(t, StatusPolicyMirror, b.configs[0].Server.StatusPolicy)
	assert.Equal(t, DriverSQLite, b.configs[0].Storage.DB.Driver)
	assert.Equal(t, "file:test.db", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_LegacyVariables(t *testing.T) {
	t.Setenv("JWT_SECRET", "legacy-secret")
	t.Setenv("PORT", "4000")
	t.Setenv("DATABASE_URL", "postgres://legacy/db")

	b := newConfigBuilder(nil)
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "legacy-secret", b.configs[0].App.JWTSecret)
	assert.Equal(t, ":4000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "postgres://legacy/db", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_PrefixedVariableBeatsLegacy(t *testing.T) {
	t.Setenv("JWT_SECRET", "legacy-secret")
	t.Setenv("APP_JWT_SECRET", "prefixed-secret")

	b := newConfigBuilder(nil)
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "prefixed-secret", b.configs[0].App.JWTSecret)
}

func TestWithEnv_SetsErrorOnMalformedValue(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "seven days")

	b := newConfigBuilder(nil)
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder(nil)
	b.withDotEnv()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_ReadsFileWithoutExporting(t *testing.T) {
	p := writeTempFile(t, "test.env", "JWT_SECRET=dotenv-secret\nSTORAGE_DB_DRIVER=sqlite3\n")
	t.Setenv("DOTENV", p)

	b := newConfigBuilder(nil)
	b.withDotEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv-secret", b.configs[0].App.JWTSecret)
	assert.Equal(t, DriverSQLite, b.configs[0].Storage.DB.Driver)

	_, exported := os.LookupEnv("STORAGE_DB_DRIVER")
	assert.False(t, exported)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newConfigBuilder([]string{
		"-a", "localhost:8081",
		"-jwt-secret", "flag-secret",
		"-token-duration", "30m",
		"-password-hash-cost", "12",
		"-status-policy", "mirror",
		"-db-driver", "sqlite3",
		"-d", "file:flags.db",
		"-max-body-bytes", "2048",
	})
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	cfg := b.configs[0]
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "flag-secret", cfg.App.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, StatusPolicyMirror, cfg.Server.StatusPolicy)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder([]string{"-no-such-flag"})
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	payload.Server.StatusPolicy = StatusPolicyMirror
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
	assert.Equal(t, StatusPolicyMirror, b.configs[1].Server.StatusPolicy)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.TokenIssuer)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

// TestPipeline_Precedence verifies dotenv < env < flags < json.
func TestPipeline_Precedence(t *testing.T) {
	dotenv := writeTempFile(t, "p.env", "APP_JWT_SECRET=from-dotenv\nAPP_TOKEN_ISSUER=from-dotenv\nAPP_LOG_LEVEL=from-dotenv\nSTORAGE_DB_DATABASE_URI=from-dotenv\n")
	t.Setenv("DOTENV", dotenv)
	t.Setenv("APP_TOKEN_ISSUER", "from-env")
	t.Setenv("APP_LOG_LEVEL", "from-env")

	payload := StructuredJSONConfig{}
	payload.App.LogLevel = "from-json"
	jsonPath := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder([]string{"-log-level", "from-flags", "-c", jsonPath}).
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.App.JWTSecret)
	assert.Equal(t, "from-dotenv", cfg.Storage.DB.DSN)
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
	assert.Equal(t, "from-json", cfg.App.LogLevel)
}
