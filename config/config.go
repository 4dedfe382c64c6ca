package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DB     DBConfig
	Server ServerConfig
	Auth   AuthConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSL      bool
	// InternalHost is the private-network address some hosts expose
	// alongside the public one. Tried before Host when set.
	InternalHost string
	InternalPort string
}

type ServerConfig struct {
	Port           string
	BaseURL        string
	AllowedOrigins string
	Mode           string
}

type AuthConfig struct {
	SessionSecret string
}

// Load reads configuration from the environment, consulting aliased
// variable names in a fixed order: internal-network names first, then the
// generic DB_* names, then the names managed hosting platforms inject.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DB: DBConfig{
			Host:         firstEnv("DB_HOST", "MYSQLHOST", "PGHOST"),
			Port:         firstEnvDefault("5432", "DB_PORT", "MYSQLPORT", "PGPORT"),
			User:         firstEnvDefault("postgres", "DB_USER", "MYSQLUSER", "PGUSER"),
			Password:     firstEnv("DB_PASSWORD", "MYSQLPASSWORD", "PGPASSWORD"),
			Name:         firstEnvDefault("qrmenu", "DB_NAME", "MYSQLDATABASE", "PGDATABASE"),
			SSL:          firstEnv("DB_SSL", "MYSQL_SSL") == "true",
			InternalHost: firstEnv("DB_INTERNAL_HOST", "RAILWAY_PRIVATE_DOMAIN"),
			InternalPort: firstEnv("DB_INTERNAL_PORT"),
		},
		Server: ServerConfig{
			Port:           firstEnvDefault("8080", "PORT"),
			BaseURL:        firstEnvDefault("http://localhost:8080", "BASE_URL"),
			AllowedOrigins: firstEnv("ALLOWED_ORIGINS"),
			Mode:           firstEnv("GIN_MODE"),
		},
		Auth: AuthConfig{
			SessionSecret: firstEnvDefault("defaultsecret", "SESSION_SECRET"),
		},
	}

	if cfg.DB.Host == "" && cfg.DB.InternalHost == "" {
		log.Println("Warning: no database host configured, falling back to localhost")
		cfg.DB.Host = "localhost"
	}
	if cfg.DB.Password == "" {
		log.Println("Warning: no database password configured")
	}

	return cfg
}

// firstEnv returns the value of the first set, non-empty variable.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func firstEnvDefault(def string, keys ...string) string {
	if v := firstEnv(keys...); v != "" {
		return v
	}
	return def
}
