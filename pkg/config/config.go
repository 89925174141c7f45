package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	JWTIssuer         string
	BcryptCost        int
	AccessTTLSeconds  int
	RefreshTTLSeconds int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:         getEnv("JWT_ISSUER", "blog-service"),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		AccessTTLSeconds:  getEnvInt("ACCESS_TTL_SECONDS", 300),
		RefreshTTLSeconds: getEnvInt("REFRESH_TTL_SECONDS", 3600),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
