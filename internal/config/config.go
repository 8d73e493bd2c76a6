package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageFiles    = "files"
	StoragePostgres = "postgres"
)

type Config struct {
	Env              string `yaml:"env"`
	ListenAddr       string `yaml:"listen_addr"`
	Storage          string `yaml:"storage"`
	DataDir          string `yaml:"data_dir"`
	DatabaseURL      string `yaml:"database_url"`
	ScanWriters      int    `yaml:"scan_writers"`
	ScanWriteRetries int    `yaml:"scan_write_retries"`
	ScanQueueSize    int    `yaml:"scan_queue_size"`
	MaxConns         int    `yaml:"max_conns"`
	MaxUploadMB      int    `yaml:"max_upload_mb"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

// Load reads a .env file if present, then environment variables, then the
// YAML file named by CONFIG_FILE. Values set in YAML win. The returned error
// is a warning; cfg is always usable.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:              getenv("APP_ENV", "development"),
		ListenAddr:       getenv("LISTEN_ADDR", ":3000"),
		Storage:          getenv("STORAGE", StorageFiles),
		DataDir:          getenv("DATA_DIR", "./data"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		ScanWriters:      getenvInt("SCAN_WRITERS", 2),
		ScanWriteRetries: getenvInt("SCAN_WRITE_RETRIES", 3),
		ScanQueueSize:    getenvInt("SCAN_QUEUE_SIZE", 256),
		MaxConns:         getenvInt("MAX_CONNS", 64),
		MaxUploadMB:      getenvInt("MAX_UPLOAD_MB", 16),
	}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := overlay(&cfg, path); err != nil {
			return cfg, err
		}
	}

	switch cfg.Storage {
	case StorageFiles:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("DATABASE_URL not set")
		}
	default:
		bad := cfg.Storage
		cfg.Storage = StorageFiles
		return cfg, fmt.Errorf("unknown STORAGE %q, using %s", bad, StorageFiles)
	}
	return cfg, nil
}

// overlay decodes path into cfg. Keys missing from the file keep their
// current values.
func overlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}
