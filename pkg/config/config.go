package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string         `json:"port"`
	JWTSecret string         `json:"jwt_secret"`
	Database  DatabaseConfig `json:"database"`
	CORS      CORSConfig     `json:"cors"`
	TMDB      TMDBConfig     `json:"tmdb"`
	Log       LogConfig      `json:"log"`
}

type DatabaseConfig struct {
	Name            string        `mapstructure:"db_name"`
	Host            string        `mapstructure:"db_host"`
	Port            string        `mapstructure:"db_port"`
	Username        string        `mapstructure:"db_username"`
	Password        string        `mapstructure:"db_password"`
	MaxOpenConns    int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
	SSLMode         string        `mapstructure:"db_ssl_mode"` // e.g., "disable", "require", "verify-ca", "verify-full"
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	AllowedMethods []string `mapstructure:"cors_allowed_methods"`
	AllowedHeaders []string `mapstructure:"cors_allowed_headers"`
}

// TMDBConfig holds the non-secret TMDB parameters. The API key itself lives in
// the api_settings table and is resolved per call by the metadata client.
type TMDBConfig struct {
	BaseURL      string `mapstructure:"tmdb_base_url"`
	ImageBaseURL string `mapstructure:"tmdb_image_base_url"`
	Language     string `mapstructure:"tmdb_language"`
}

type LogConfig struct {
	Level string `mapstructure:"log_level"`
}

func init() {
	if !isGCP {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not find or load .env file.")
		}
	}
}

func NewConfig() *Config {
	return &Config{
		Port:      getOptionalSecret("PORT", "8080"),
		JWTSecret: getRequiredSecret("JWT_SECRET"),
		Database: DatabaseConfig{
			Name:            getRequiredSecret("DB_NAME"),
			Host:            getRequiredSecret("DB_HOST"),
			Port:            getRequiredSecret("DB_PORT"),
			Username:        getRequiredSecret("DB_USERNAME"),
			Password:        getRequiredSecret("DB_PASSWORD"),
			MaxOpenConns:    parseInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    parseInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration("DB_CONN_MAX_LIFETIME"),
			SSLMode:         getOptionalSecret("DB_SSL_MODE", "disable"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			AllowedMethods: parseList("CORS_ALLOWED_METHODS", "GET,POST,PUT,PATCH,DELETE,OPTIONS"),
			AllowedHeaders: parseList("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		TMDB: TMDBConfig{
			BaseURL:      getOptionalSecret("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			ImageBaseURL: getOptionalSecret("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p"),
			Language:     getOptionalSecret("TMDB_LANGUAGE", "en-US"),
		},
		Log: LogConfig{
			Level: getOptionalSecret("LOG_LEVEL", "info"),
		},
	}
}

// parseList splits a comma-separated secret into its entries.
func parseList(key, defaultValue string) []string {
	raw := getOptionalSecret(key, defaultValue)

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
