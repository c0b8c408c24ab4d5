package config

import (
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                int    `env:"PORT" envDefault:"8080"`
	Dsn                 string `env:"DSN" envDefault:"postgres://localhost:5432/pinspot"`
	JwtSecret           string `env:"JWT_SECRET"`
	JwtExpires          string `env:"JWT_EXPIRES" envDefault:"720h"`
	ReportFlagThreshold int    `env:"REPORT_FLAG_THRESHOLD" envDefault:"3"`
	FeedPageSize        int    `env:"FEED_PAGE_SIZE" envDefault:"20"`
	SchemaPath          string `env:"SCHEMA_PATH" envDefault:"internal/db/schema.sql"`
	Environment         string `env:"ENVIRONMENT" envDefault:"development"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
