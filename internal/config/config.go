package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the KoboWave backend.
type Config struct {
	Env       string
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	AllowedOrigins []string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Collections ensured at startup before review traffic is served.
	BootstrapCollections []string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_NAME", "kobowave")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")
	viper.SetDefault("BOOTSTRAP_COLLECTIONS", "reviews,movies,restaurants,users")

	mongoURI := viper.GetString("MONGODB_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	readTimeout, err := time.ParseDuration(viper.GetString("SERVER_READ_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(viper.GetString("SERVER_WRITE_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(viper.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
	}

	return &Config{
		Env:                  viper.GetString("ENV"),
		Port:                 viper.GetString("PORT"),
		MongoURI:             mongoURI,
		DBName:               viper.GetString("DB_NAME"),
		JWTSecret:            jwtSecret,
		AllowedOrigins:       splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		ReadTimeout:          readTimeout,
		WriteTimeout:         writeTimeout,
		ShutdownTimeout:      shutdownTimeout,
		BootstrapCollections: splitList(viper.GetString("BOOTSTRAP_COLLECTIONS")),
	}, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
