package config

import (
	"os"
	"time"
)

func parseEnv(cfg *Config) {
	if v := os.Getenv("CRMDASH_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("CRMDASH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.Timeout = d
	}
}
