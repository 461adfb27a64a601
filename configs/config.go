package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	DBDriver  string
	DBSource  string
	RedisAddr string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// Pass download URLs are valid this long.
	DownloadTTL time.Duration

	// Apple Wallet
	ApplePassTypeID string
	AppleTeamID     string
	AppleCertPath   string
	AppleKeyPath    string

	// Google Wallet
	GoogleIssuerID  string
	GoogleClassID   string
	GoogleSAEmail   string
	GoogleSAKeyPath string
}

func LoadConfig() *Config {
	// .env is optional outside local dev
	_ = godotenv.Load()

	return &Config{
		Env:       getEnv("APP_ENV", "development"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "app.db"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		DownloadTTL: 15 * time.Minute,

		ApplePassTypeID: getEnv("APPLE_PASS_TYPE_ID", "pass.com.example.loyalty"),
		AppleTeamID:     getEnv("APPLE_TEAM_ID", ""),
		AppleCertPath:   getEnv("APPLE_CERT_PATH", ""),
		AppleKeyPath:    getEnv("APPLE_KEY_PATH", ""),

		GoogleIssuerID:  getEnv("GOOGLE_ISSUER_ID", ""),
		GoogleClassID:   getEnv("GOOGLE_CLASS_ID", ""),
		GoogleSAEmail:   getEnv("GOOGLE_SA_EMAIL", ""),
		GoogleSAKeyPath: getEnv("GOOGLE_SA_KEY_PATH", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
