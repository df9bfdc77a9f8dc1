package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseURL string // Postgres connection URL; empty = embedded SQLite
	SQLitePath  string
	JWTSecret   string
	CORSOrigins string
}

const devJWTSecret = "dev-secret-cambiame-en-produccion-0123456789"

func Load() *Config {
	// .env is optional, real deployments inject env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "hris_saas.db"),
		JWTSecret:   getEnv("JWT_SECRET", devJWTSecret),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "https://rrhh-seven.vercel.app,http://localhost:5173"),
	}

	if cfg.JWTSecret == devJWTSecret {
		log.Println("[WARN] JWT_SECRET no definido, usando el secreto de desarrollo. Defínelo en producción.")
	}
	if cfg.DatabaseURL == "" {
		log.Printf("[WARN] DATABASE_URL no definido, usando SQLite local en %s.", cfg.SQLitePath)
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
