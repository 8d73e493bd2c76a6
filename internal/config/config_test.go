package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads and runs the test from an empty
// directory so no stray .env is picked up.
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "LISTEN_ADDR", "STORAGE", "DATA_DIR", "DATABASE_URL", "SCAN_WRITERS",
		"SCAN_WRITE_RETRIES", "SCAN_QUEUE_SIZE", "MAX_CONNS", "MAX_UPLOAD_MB", "CONFIG_FILE",
	} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Env:              "development",
		ListenAddr:       ":3000",
		Storage:          StorageFiles,
		DataDir:          "./data",
		ScanWriters:      2,
		ScanWriteRetries: 3,
		ScanQueueSize:    256,
		MaxConns:         64,
		MaxUploadMB:      16,
	}, cfg)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("SCAN_WRITERS", "5")
	t.Setenv("MAX_CONNS", "oops")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, 5, cfg.ScanWriters)
	assert.Equal(t, 64, cfg.MaxConns)
}

func TestPostgresWithoutURLWarns(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "postgres")
	cfg, err := Load()
	assert.Error(t, err)
	assert.Equal(t, StoragePostgres, cfg.Storage)
}

func TestUnknownStorageFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "s3")
	cfg, err := Load()
	assert.Error(t, err)
	assert.Equal(t, StorageFiles, cfg.Storage)
}

func TestYAMLOverlay(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "scanhelper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":4000\"\nscan_queue_size: 10\n"), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATA_DIR", "/srv/scans")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.ListenAddr)
	assert.Equal(t, 10, cfg.ScanQueueSize)
	assert.Equal(t, "/srv/scans", cfg.DataDir)
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides a variable that is present, even when empty.
	require.NoError(t, os.Unsetenv("MAX_UPLOAD_MB"))
	require.NoError(t, os.WriteFile(".env", []byte("MAX_UPLOAD_MB=4\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxUploadMB)
}
