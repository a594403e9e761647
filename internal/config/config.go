package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"sumon-service/internal/pkg/jwt"
)

type AppConfig struct {
	// Server
	HTTPAddr string
	Env      string

	// Storage
	DatabaseURL string
	RedisAddr   string
	RedisPass   string

	// JWT
	JWT jwt.Config

	// SMTP
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	SMTPFromName string
	SMTPSecure   bool

	// Mail addressing
	EmailFrom    string
	ContactEmail string

	// HTTP boundary
	AllowedOrigins    []string
	AllowRegistration bool
	RateLimitMax      int64
	RateLimitWindow   time.Duration

	// Image storage
	UseSupabase    bool
	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string
	UploadDir      string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":5000"),
		Env:      getEnv("APP_ENV", "production"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASS", ""),

		JWT: jwt.Config{
			Secret: getEnv("JWT_SECRET", ""),
			Issuer: getEnv("JWT_ISSUER", "sumon-service"),
			TTL:    getEnvDuration("JWT_TTL", 720*time.Hour),
		},

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "465"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "M/S SUMON ENTERPRISE"),
		SMTPSecure:   strings.ToLower(getEnv("SMTP_SECURE", "true")) == "true",

		EmailFrom:    getEnv("EMAIL_FROM", ""),
		ContactEmail: getEnv("CONTACT_EMAIL", ""),

		AllowedOrigins:    getEnvSlice("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
		AllowRegistration: strings.ToLower(getEnv("ALLOW_REGISTRATION", "true")) == "true",
		RateLimitMax:      getEnvInt64("RATE_LIMIT_MAX", 100),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),

		UseSupabase:    strings.ToLower(getEnv("USE_SUPABASE", "false")) == "true",
		SupabaseURL:    getEnv("SUPABASE_URL", ""),
		SupabaseKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseBucket: getEnv("SUPABASE_BUCKET", "project-images"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
