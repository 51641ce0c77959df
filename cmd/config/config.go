package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:""`

	Server   ServerConfig
	Backend  BackendConfig
	Auth     AuthConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"3000"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	// InternalAPIKey guards /internal/ routes; empty disables them.
	InternalAPIKey string `envconfig:"INTERNAL_API_KEY"`
}

// BackendConfig points at the catalog REST backend.
type BackendConfig struct {
	BaseURL string        `envconfig:"API_URL" default:"http://localhost:8080/api/v1"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
}

type AuthConfig struct {
	AdminUsername     string        `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiration     time.Duration `envconfig:"JWT_EXPIRATION" default:"8h"`
	SessionExpTime    time.Duration `envconfig:"SESSION_EXPIRATION" default:"8h"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// RabbitMQConfig is optional; an empty host disables audit publishing.
type RabbitMQConfig struct {
	Host     string `envconfig:"RABBITMQ_HOST"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"guest"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
}

// Load reads an optional .env file then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	// required only checks presence; an empty secret would still sign tokens
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	return &cfg, nil
}
