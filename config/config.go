// Package config reads the service configuration from the environment,
// after loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	JWTSecret  string
	SessionTTL time.Duration
	APIKey     string

	// DatabaseURL, when set, wins over the DB_* parts.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	FirebaseCredentialsJSON string
	FirebaseProjectID       string
	FirebaseWebAPIKey       string
	VerificationContinueURL string

	GeminiAPIKey     string
	GeminiModel      string
	ChatbotRulesFile string
	ChatbotLatency   time.Duration

	CatalogSeed  uint64
	EnforceStock bool
	LogLevel     string
	CORSOrigins  []string
}

// Load reads .env (if present) and then the process environment.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := Config{
		Port:                    getEnv("PORT", "8080"),
		GinMode:                 getEnv("GIN_MODE", "release"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		APIKey:                  os.Getenv("COST_API_KEY"),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		FirebaseCredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseWebAPIKey:       os.Getenv("FIREBASE_WEB_API_KEY"),
		VerificationContinueURL: os.Getenv("VERIFICATION_CONTINUE_URL"),
		GeminiAPIKey:            os.Getenv("GEMINI_API_KEY"),
		GeminiModel:             os.Getenv("GEMINI_MODEL"),
		ChatbotRulesFile:        os.Getenv("CHATBOT_RULES_FILE"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ChatbotLatency, err = getDuration("CHATBOT_LATENCY", 800*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.EnforceStock, err = getBool("ENFORCE_STOCK", false); err != nil {
		return Config{}, err
	}
	seed := getEnv("CATALOG_SEED", "20240101")
	if cfg.CatalogSeed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return Config{}, fmt.Errorf("CATALOG_SEED: %w", err)
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	} else {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg, nil
}

// Validate reports every missing required setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if c.APIKey == "" {
		errs = append(errs, errors.New("COST_API_KEY must be set"))
	}
	if c.FirebaseCredentialsJSON != "" && c.FirebaseProjectID == "" {
		errs = append(errs, errors.New("FIREBASE_PROJECT_ID must be set with FIREBASE_CREDENTIALS_JSON"))
	}
	if c.FirebaseCredentialsJSON != "" && c.FirebaseWebAPIKey == "" {
		errs = append(errs, errors.New("FIREBASE_WEB_API_KEY must be set with FIREBASE_CREDENTIALS_JSON"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// DatabaseDSN returns the PostgreSQL connection string, or "" when no
// database is configured.
func (c Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBHost == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

// AuthEnabled reports whether Firebase sign-in is configured.
func (c Config) AuthEnabled() bool {
	return c.FirebaseCredentialsJSON != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
