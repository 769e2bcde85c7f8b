package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	Web    WebConfig
	DB     *DBConfig // nil when no database is configured; history stays disabled
	JWT    JWTConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type WebConfig struct {
	Port           string
	CalcServiceURL string
}

type DBConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	Name    string
	SSLMode string
	DSN     string
}

type JWTConfig struct {
	SecretKey            string
	AccessTokenExpiresIn time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         envOrDefault("SERVER_PORT", "8080"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Web: WebConfig{
			Port:           envOrDefault("WEB_PORT", "8081"),
			CalcServiceURL: envOrDefault("CALC_SERVICE_URL", "http://localhost:8080"),
		},
	}

	// The database is optional: without DB_HOST the calculation service runs
	// stateless and the history routes are not mounted.
	if os.Getenv("DB_HOST") != "" {
		dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT: %v", err)
		}

		dbConfig := &DBConfig{
			Host:    os.Getenv("DB_HOST"),
			Port:    dbPort,
			User:    os.Getenv("DB_USER"),
			Pass:    os.Getenv("DB_PASS"),
			Name:    os.Getenv("DB_NAME"),
			SSLMode: envOrDefault("DB_SSLMODE", "disable"),
		}
		dbConfig.DSN = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dbConfig.Host, dbConfig.Port, dbConfig.User, dbConfig.Pass, dbConfig.Name, dbConfig.SSLMode,
		)
		cfg.DB = dbConfig

		if os.Getenv("JWT_SECRET") == "" {
			return nil, fmt.Errorf("JWT_SECRET must be set when the database is configured")
		}
	}

	expiresIn := 1 * time.Hour
	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %v", err)
		}
		expiresIn = parsed
	}
	cfg.JWT = JWTConfig{
		SecretKey:            os.Getenv("JWT_SECRET"),
		AccessTokenExpiresIn: expiresIn,
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
