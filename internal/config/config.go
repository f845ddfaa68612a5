package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort     string
	DatabasePath string // SQLite dosya yolu (varsayılan)
	DatabaseDSN  string // Doluysa Postgres kullanılır
	JWTSecret    string // Boşsa auth devre dışı
	CORSOrigins  string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "mutfak.sqlite"),
		DatabaseDSN:  getEnv("DATABASE_DSN", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET tanımlanmamış, API auth olmadan çalışacak.")
	} else if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
