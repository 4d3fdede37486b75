package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	PostgresURI    string
	RedisURI       string
	Port           string
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	Environment    string   // ENV: production, development, etc.

	// AI assistant settings
	GeminiAPIKey string
	GenModel     string
	AITimeout    time.Duration // per-call deadline for the assistant gateway
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	// CORS: allow multiple origins so a deployed frontend works alongside local dev
	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		if u := strings.TrimSpace(getEnv("FRONTEND_URL", "")); u != "" {
			allowedOrigins = append(allowedOrigins, u)
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return &Config{
		PostgresURI:    getEnv("POSTGRES_URI", "postgres://localhost:5432/parentadvocate?sslmode=disable"),
		RedisURI:       getEnv("REDIS_URI", "redis://localhost:6379/0"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: allowedOrigins,
		Environment:    env,
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GenModel:       getEnv("GEN_MODEL", "gemini-1.5-flash"),
		AITimeout:      time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 60)) * time.Second,
	}
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
