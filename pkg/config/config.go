package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv          string        `envconfig:"APP_ENV"`
	Port            int           `envconfig:"PORT" default:"3000" validate:"min=1,max=65535"`
	SentryDSN       string        `envconfig:"SENTRY_DSN"`
	AllowOrigins    string        `envconfig:"ALLOW_ORIGINS"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"INFO"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`

	OMDB struct {
		BaseURL string        `envconfig:"OMDB_BASE_URL" default:"https://www.omdbapi.com/" validate:"required,url"`
		APIKey  string        `envconfig:"OMDB_API_KEY"`
		Timeout time.Duration `envconfig:"OMDB_TIMEOUT" default:"10s" validate:"gte=0"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
