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

// requiredSecrets carries the fields that have no default.
func requiredSecrets() *StructuredConfig {
	return &StructuredConfig{
		Auth:    Auth{TokenSignKey: "sign-key"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/filmvault"}},
		Adapter: Adapter{TMDB: TMDB{APIKey: "tmdb-key"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config without any
// source is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_NegativeRateLimitOverridesDefault verifies that the disabled
// rate limit survives the merge over the defaults.
func TestBuild_NegativeRateLimitOverridesDefault(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	override := requiredSecrets()
	override.Server.AuthRateLimit = -1
	b.configs = append(b.configs, override)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.InDelta(t, -1.0, cfg.Server.AuthRateLimit, 1e-9)
	assert.Equal(t, 5, cfg.Server.AuthRateBurst)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsAndSecrets verifies that defaults fill everything the
// secrets leave out.
func TestBuild_DefaultsAndSecrets(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, requiredSecrets())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "v1", cfg.App.Version)
	assert.Equal(t, "FilmVault", cfg.Auth.TokenIssuer)
	assert.Equal(t, "FilmVaultUsers", cfg.Auth.TokenAudience)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.Adapter.TMDB.ImageBaseURL)
	assert.Equal(t, "sign-key", cfg.Auth.TokenSignKey)
}

// TestBuild_LaterSourceOverrides verifies that non-zero fields of later
// configs win and zero fields do not erase earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		requiredSecrets(),
		&StructuredConfig{App: App{Version: "v2"}, Auth: Auth{TokenIssuer: "first"}},
		&StructuredConfig{Auth: Auth{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "v2", cfg.App.Version)
	assert.Equal(t, "second", cfg.Auth.TokenIssuer)
	assert.Equal(t, "sign-key", cfg.Auth.TokenSignKey)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFileIsIgnored verifies that an absent .env file is
// not an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDotEnv(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_RealEnvWins verifies that the dotenv file only fills unset
// variables.
func TestWithDotEnv_RealEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=from-file\nAUTH_TOKEN_ISSUER=file-issuer\n"), 0o600))

	t.Setenv("APP_VERSION", "from-env")
	// registered for cleanup; godotenv sets it below
	t.Setenv("AUTH_TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("AUTH_TOKEN_ISSUER"))

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
	assert.Equal(t, "file-issuer", b.configs[0].Auth.TokenIssuer)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.TokenIssuer)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable value is
// reported.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "forever")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedFlags verifies the fluent interface and parsing.
func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-token-issuer", "flag-issuer"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-issuer", b.configs[0].Auth.TokenIssuer)
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that parse failures are
// collected.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Auth.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].Auth.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies env < flags < JSON.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	t.Chdir(t.TempDir())

	payload := StructuredJSONConfig{}
	payload.Auth.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_AUDIENCE", "env-audience")
	t.Setenv("STORAGE_DB_DSN", "postgres://env/db")
	t.Setenv("ADAPTER_TMDB_API_KEY", "env-tmdb")

	cfg, err := GetStructuredConfig([]string{
		"-token-issuer", "flag-issuer",
		"-token-audience", "flag-audience",
		"-c", path,
	})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "flag-audience", cfg.Auth.TokenAudience)
	assert.Equal(t, "json-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, path, cfg.JSONFilePath)
}
