package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadAppConfig loads and validates the application configuration. A missing
// config file is not an error; defaults plus environment variables are
// enough to run.
func LoadAppConfig(path string) (AppConfig, error) {
	// .env is optional and only feeds the environment
	_ = godotenv.Load()

	var cfg AppConfig
	paths := []string{path, "config.yml"}
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}

	applyEnv(&cfg)

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Ingest.GTFSRT.ReadIntervalMS == 0 {
		cfg.Ingest.GTFSRT.ReadIntervalMS = 15000
	}
	if cfg.Ingest.GTFSRT.TimeoutMS == 0 {
		cfg.Ingest.GTFSRT.TimeoutMS = 10000
	}
	if cfg.Ingest.NATS.Subject == "" {
		cfg.Ingest.NATS.Subject = "shuttle.positions.>"
	}
	if cfg.Auth.JWTSecret == "" {
		return AppConfig{}, fmt.Errorf("jwt secret is required (auth.jwtSecret or JWT_SECRET)")
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if p := os.Getenv("PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.Ingest.NATS.URL = v
	}
	if v := os.Getenv("NATS_SUBJECT"); v != "" {
		cfg.Ingest.NATS.Subject = v
	}
	if v := os.Getenv("INGEST_TOKEN"); v != "" {
		cfg.Ingest.Token = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
}
