package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr string `yaml:"http_addr"`

	StoreDriver string `yaml:"store_driver"` // memory|file|sqlite|postgres
	StoreDSN    string `yaml:"store_dsn"`    // sqlite/postgres DSN
	StorePath   string `yaml:"store_path"`   // base dir for the file backend

	CORSOrigins []string `yaml:"cors_origins"`
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:    addr,
		StoreDriver: envOr("STORE_DRIVER", "sqlite"),
		StoreDSN:    os.Getenv("STORE_DSN"),
		StorePath:   envOr("STORE_PATH", "./data"),
		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

// Load builds the config from the environment, then overlays the YAML file
// named by CONFIG_FILE when set. File values win where non-empty.
func Load() (Config, error) {
	cfg := FromEnv()
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if file.HTTPAddr != "" {
		cfg.HTTPAddr = file.HTTPAddr
	}
	if file.StoreDriver != "" {
		cfg.StoreDriver = file.StoreDriver
	}
	if file.StoreDSN != "" {
		cfg.StoreDSN = file.StoreDSN
	}
	if file.StorePath != "" {
		cfg.StorePath = file.StorePath
	}
	if len(file.CORSOrigins) > 0 {
		cfg.CORSOrigins = file.CORSOrigins
	}
	return cfg, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
