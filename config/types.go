package config

// ServerConfig contains the HTTP listener configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// AuthConfig contains access-gate configuration.
type AuthConfig struct {
	JWTSecret string `yaml:"jwtSecret"`
}

// DatabaseConfig selects the fleet store backend. An empty URL means the
// in-memory registry.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// NATSConfig configures the NATS position-feed subscription.
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// GTFSRTConfig configures the GTFS-Realtime VehiclePositions poller.
type GTFSRTConfig struct {
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	ReadIntervalMS      int    `yaml:"readIntervalMS" validate:"gte=0"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
}

// IngestConfig groups the out-of-band location feeds. Token, when set, is
// required on the HTTP location-update and seed endpoints.
type IngestConfig struct {
	Token  string       `yaml:"token"`
	NATS   NATSConfig   `yaml:"nats"`
	GTFSRT GTFSRTConfig `yaml:"gtfsrt"`
}

// MetricsConfig configures the Prometheus listener. Empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}
