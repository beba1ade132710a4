package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[database]
host = "localhost"
user = "villa"
dbname = "villa"

[admin]
token = "from-file"

[redis]
addr = "localhost:6379"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "Asia/Seoul", cfg.Booking.Timezone)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "from-env")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load(writeConfig(t, minimalConfig))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Admin.Token)
	assert.Contains(t, cfg.Database.DSN(), "password=pw")
}

func TestLoad_MissingEssentials(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")

	_, err := Load(writeConfig(t, "[server]\nhttp_port = 9000\n"))

	assert.ErrorIs(t, err, ErrValidate)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.ErrorIs(t, err, ErrLoad)
}
