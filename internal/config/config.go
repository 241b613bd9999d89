package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int

	DatabaseURL  string
	DatabaseName string

	KafkaBrokers []string

	LogLevel string
}

// Load reads configuration from the environment, with .env as a convenience
// for local runs. DATABASE_URL and DATABASE_NAME are required; everything
// else has a default or is optional.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v, using system environment", err)
	}

	cfg := Config{
		ServerPort:   envIntDefault("PORT", 8000),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		KafkaBrokers: csv(os.Getenv("KAFKA_BROKERS")),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}

	mustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	mustNonEmpty(cfg.DatabaseName, "DATABASE_NAME")

	return cfg
}

func mustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func csv(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
