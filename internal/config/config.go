package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Port          string
	Environment   string
	MongoURI      string
	MongoDatabase string

	JWTSecret string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	RedisAddr      string
	RedisPassword  string
	ClinicCacheTTL time.Duration

	NominatimURL string
	OverpassURL  string

	TextbeltAPIKey string
	TextbeltURL    string

	AllowedOrigins   []string
	ReminderSchedule string
	SeedMedicines    bool
}

// Load reads the configuration from environment variables, falling back to
// defaults that work against a local MongoDB.
func Load() *Config {
	allowedOrigins := []string{"http://localhost:9002"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		allowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}

	return &Config{
		Port:             getEnvOrDefault("API_PORT", "8080"),
		Environment:      getEnvOrDefault("ENVIRONMENT", "development"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "swasth"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:    getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		ClinicCacheTTL:   getDurationOrDefault("CLINIC_CACHE_TTL", 10*time.Minute),
		NominatimURL:     getEnvOrDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		OverpassURL:      getEnvOrDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		TextbeltAPIKey:   os.Getenv("TEXTBELT_API_KEY"),
		TextbeltURL:      getEnvOrDefault("TEXTBELT_URL", "https://textbelt.com/text"),
		AllowedOrigins:   allowedOrigins,
		ReminderSchedule: getEnvOrDefault("REMINDER_SCHEDULE", "0 8 * * *"),
		SeedMedicines:    getBoolOrDefault("SEED_MEDICINES", true),
	}
}

// IsProduction reports whether the API runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
