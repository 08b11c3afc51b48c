package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8000"`

	DatabaseURL string `env:"DATABASE_URL,required"`

	// Optional: when unset the cart store falls back to in-memory.
	RedisAddr string `env:"REDIS_ADDR"`

	// Base URL encoded into table QR codes.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8000"`

	AllowOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// Optional: image uploads are disabled when R2 is not configured.
	R2Endpoint      string `env:"R2_ENDPOINT"`
	R2AccessKey     string `env:"R2_ACCESS_KEY"`
	R2SecretKey     string `env:"R2_SECRET_KEY"`
	R2Bucket        string `env:"R2_BUCKET_NAME"`
	R2PublicBaseURL string `env:"R2_PUBLIC_BASE_URL"`
}

func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StorageConfigured reports whether all R2 settings are present.
func (c *Config) StorageConfigured() bool {
	return c.R2Endpoint != "" &&
		c.R2AccessKey != "" &&
		c.R2SecretKey != "" &&
		c.R2Bucket != "" &&
		c.R2PublicBaseURL != ""
}
