package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "8080"
	DefaultTokenExpiryHours = 168 // 7 days
	DefaultBcryptCost       = 10
)

// Config carries everything the services need at construction time.
// Business logic never reads the process environment directly.
type Config struct {
	Env              string
	Port             string
	DBURL            string
	TokenSecret      string
	TokenExpiryHours int
	BcryptCost       int
}

// TokenLifetime returns the configured token validity window.
func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.TokenExpiryHours) * time.Hour
}

// Load reads configuration from config/.env.<env> (when present) and the
// process environment, with the environment taking precedence. DB_URL is
// optional: when empty the server runs on in-memory stores.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := ".env.dev"
	if env == "production" {
		envFile = ".env.prod"
	}
	// Missing file is fine; everything can come from the environment.
	_ = godotenv.Load(filepath.Join("config", envFile))

	return &Config{
		Env:              env,
		Port:             getEnv("PORT", DefaultPort),
		DBURL:            getEnv("DB_URL", ""),
		TokenSecret:      mustGetEnv("TOKEN_SECRET"),
		TokenExpiryHours: getEnvAsInt("TOKEN_EXPIRY_HOURS", DefaultTokenExpiryHours),
		BcryptCost:       getEnvAsInt("BCRYPT_COST", DefaultBcryptCost),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
