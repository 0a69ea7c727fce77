// Package config loads the application configuration from config.yml and
// the environment. YAML supplies the structure; environment variables
// (optionally via a .env file) override the deploy-time values: PORT,
// JWT_SECRET, DATABASE_URL, NATS_URL, METRICS_ADDR, INGEST_TOKEN.
package config
