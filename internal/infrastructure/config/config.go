package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values loaded once at startup.
type Config struct {
	Port               string
	MongoURI           string
	MongoDBName        string
	JWTSecret          string
	AccessTokenTTL     time.Duration
	AIServiceAPIKey    string
	RedisURL           string
	CORSOrigin         string
	AIDegradeOnFailure bool
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "curalink"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTokenTTL:     time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 60)),
		AIServiceAPIKey:    getEnv("GEMINI_API_KEY", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		CORSOrigin:         getEnv("CORS_ORIGIN", "http://localhost:3000"),
		AIDegradeOnFailure: getEnvAsBool("AI_DEGRADE_ON_FAILURE", true),
	}
}

// GetAccessTokenTTL returns the lifetime of issued access tokens.
func (c *Config) GetAccessTokenTTL() time.Duration {
	return c.AccessTokenTTL
}

// GetAIDegradeOnFailure reports whether AI extraction failures degrade to
// an empty result instead of failing the request.
func (c *Config) GetAIDegradeOnFailure() bool {
	return c.AIDegradeOnFailure
}

// GetAIServiceAPIKey returns the Gemini API key.
func (c *Config) GetAIServiceAPIKey() string {
	return c.AIServiceAPIKey
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
