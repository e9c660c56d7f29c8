package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-envar/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVAR_ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	_, err := config.Load(nil)
	require.Error(t, err, "explicitly configured env file must exist")

	t.Setenv("ENVAR_ENV_FILE", "")
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	want := config.DefaultConfig()
	want.EnvFile = ""
	assert.Equal(t, want, *cfg)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ENVAR_ENV_FILE", "")
	t.Setenv("ENVAR_MANIFEST", "/etc/envar/manifest.json")
	t.Setenv("ENVAR_OUTPUT", "json")
	t.Setenv("ENVAR_LOG_LEVEL", "debug")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/etc/envar/manifest.json", cfg.Manifest)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "ENVAR_OUTPUT=json\nENVAR_TEST_FROM_FILE=hello\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("ENVAR_ENV_FILE", path)
	// t.Setenv 负责在测试结束后恢复，godotenv 不覆盖已存在的变量
	t.Setenv("ENVAR_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("ENVAR_TEST_FROM_FILE"))
	t.Setenv("ENVAR_OUTPUT", "text")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.EnvFile)
	assert.Equal(t, "text", cfg.Output, "existing variables win over the env file")
	assert.Equal(t, "hello", os.Getenv("ENVAR_TEST_FROM_FILE"))
}

func TestConfig_Level(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelWarn,
	} {
		cfg := config.Config{LogLevel: in}
		assert.Equal(t, want, cfg.Level(), in)
	}
}

func TestConfig_NewLogger(t *testing.T) {
	cfg := config.Config{LogLevel: "error", LogFormat: "json"}
	logger := cfg.NewLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
}
