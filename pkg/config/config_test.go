package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/studyos/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "memory", cfg.GetString("STORAGE"))
	assert.Equal(t, 30*time.Minute, cfg.GetDuration("JWT_ACCESS_TTL"))
	assert.Equal(t, 7*24*time.Hour, cfg.GetDuration("JWT_REFRESH_TTL"))
	assert.True(t, cfg.GetBool("AUTH_AUTO_REGISTER"))
}

func TestLoadEnvFileAndOverrides(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(envPath, []byte("STUDYOS_TEST_FROM_FILE=file_value\nGENERATOR_TIMEOUT=2s\n"), 0o600)
	require.NoError(t, err)
	t.Setenv("GENERATOR_TIMEOUT", "3s")
	t.Cleanup(func() { os.Unsetenv("STUDYOS_TEST_FROM_FILE") })

	cfg := config.Load(envPath)
	assert.Equal(t, "file_value", cfg.GetString("STUDYOS_TEST_FROM_FILE"))
	// godotenv doesn't override variables that are already set
	assert.Equal(t, 3*time.Second, cfg.GetDuration("GENERATOR_TIMEOUT"))
}

func TestValidateJWTSecret(t *testing.T) {
	testCases := []struct {
		Desc    string
		Storage string
		Secret  string
		Error   error
	}{
		{Desc: "postgres without secret", Storage: "postgres", Error: config.ErrMissingJWTSecret},
		{Desc: "postgres with secret", Storage: "postgres", Secret: "s3cr3t"},
		{Desc: "memory with secret", Storage: "memory", Secret: "s3cr3t"},
		{Desc: "memory without secret", Storage: "memory"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			t.Setenv("STORAGE", tc.Storage)
			t.Setenv("JWT_SECRET", tc.Secret)
			cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			err := cfg.Validate()
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			if tc.Secret != "" {
				assert.Equal(t, tc.Secret, cfg.GetString("JWT_SECRET"))
			} else {
				assert.Len(t, cfg.GetString("JWT_SECRET"), 64)
			}
		})
	}
}
