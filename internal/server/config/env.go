package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables. The variable
// names match the original deployment's env contract, so existing .env files
// keep working (load them with godotenv before LoadConfig).
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("SESSION_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("RESET_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.ResetTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("SMTP_HOST"); ok {
		config.SMTPHost = v
	}
	if v, ok := os.LookupEnv("SMTP_PORT"); ok {
		config.SMTPPort = v
	}
	if v, ok := os.LookupEnv("SMTP_USER"); ok {
		config.SMTPUser = v
	}
	if v, ok := os.LookupEnv("SMTP_PASS"); ok {
		config.SMTPPassword = v
	}
	if v, ok := os.LookupEnv("SMTP_FROM"); ok {
		config.SMTPFrom = v
	}
	if v, ok := os.LookupEnv("PUBLIC_BASE_URL"); ok {
		config.PublicBaseURL = v
	}
}
