package gateway

import "github.com/kelseyhightower/envconfig"

// Config holds runtime configuration for the edge gateway.
type Config struct {
	Port        string `envconfig:"GATEWAY_PORT" default:"8000"`
	UpstreamURL string `envconfig:"UPSTREAM_URL" default:"http://localhost:3000"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// LoadConfig reads gateway configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
