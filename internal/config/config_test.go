package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SENDGRID_API_KEY", "MAIL_FROM", "VERIFY_BASE_URL", "STORE_BACKEND",
		"MONGODB_URI", "REDIS_HOST", "MAIL_TRANSPORT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
	// no runtime config unless a test provides one
	t.Setenv("RUNTIME_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.json"))
}

func writeRuntimeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".runtimeconfig.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "", cfg.Mail.APIKey)
	require.False(t, cfg.Mail.Enabled())
	require.Equal(t, DefaultMailFrom, cfg.Mail.From)
	require.Equal(t, DefaultVerifyBaseURL, cfg.Verify.BaseURL)
	require.Equal(t, TransportSendGrid, cfg.Mail.Transport)
	require.Equal(t, StoreMemory, cfg.Store.Backend)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_RuntimeConfigFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUNTIME_CONFIG_PATH", writeRuntimeConfig(t, `{
		"sendgrid": {"key": "rc-key"},
		"mail": {"from": "rc@example.org"},
		"verify": {"base_url": "https://rc.example.org/decide"}
	}`))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "rc-key", cfg.Mail.APIKey)
	require.True(t, cfg.Mail.Enabled())
	require.Equal(t, "rc@example.org", cfg.Mail.From)
	require.Equal(t, "https://rc.example.org/decide", cfg.Verify.BaseURL)
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUNTIME_CONFIG_PATH", writeRuntimeConfig(t, `{
		"sendgrid": {"key": "rc-key"},
		"mail": {"from": "rc@example.org"},
		"verify": {"base_url": "https://rc.example.org/decide"}
	}`))
	t.Setenv("SENDGRID_API_KEY", "env-key")
	t.Setenv("VERIFY_BASE_URL", "https://env.example.org/decide")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "env-key", cfg.Mail.APIKey)
	require.Equal(t, "https://env.example.org/decide", cfg.Verify.BaseURL)
	// not set in env: runtime config value is used
	require.Equal(t, "rc@example.org", cfg.Mail.From)
}

func TestLoadConfig_EmptyRuntimeValueFallsThrough(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUNTIME_CONFIG_PATH", writeRuntimeConfig(t, `{"mail": {"from": ""}}`))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultMailFrom, cfg.Mail.From)
}

func TestLoadConfig_StoreBackendSelection(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_HOST", "localhost")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, StoreRedis, cfg.Store.Backend)

	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, StoreMongo, cfg.Store.Backend)

	t.Setenv("STORE_BACKEND", "Memory")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, StoreMemory, cfg.Store.Backend)
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}
