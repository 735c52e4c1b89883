package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Supported AI providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Supported session stores.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	AppEnv             string   `mapstructure:"APP_ENV"`              // "production" enables gin release mode
	ServerAddress      string   `mapstructure:"SERVER_ADDRESS"`       // e.g., ":8080"
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma separated in env

	// Logging
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogEncoding string `mapstructure:"LOG_ENCODING"`

	// AI Configuration
	AIProvider    string        `mapstructure:"AI_PROVIDER"` // "openai" or "gemini"
	AITemperature float32       `mapstructure:"AI_TEMPERATURE"`
	AITimeout     time.Duration `mapstructure:"AI_TIMEOUT"`
	OpenAIKey     string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `mapstructure:"OPENAI_BASE_URL"` // empty means api.openai.com
	OpenAIModel   string        `mapstructure:"OPENAI_MODEL"`
	GeminiKey     string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string        `mapstructure:"GEMINI_MODEL"`

	// Session Configuration
	SessionStore   string        `mapstructure:"SESSION_STORE"` // "memory" or "redis"
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
	SessionLockTTL time.Duration `mapstructure:"SESSION_LOCK_TTL"` // upper bound for one generate/improve call
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int           `mapstructure:"REDIS_DB"`
}

var defaults = map[string]any{
	"APP_ENV":              "development",
	"SERVER_ADDRESS":       ":8080",
	"CORS_ALLOWED_ORIGINS": []string{"http://localhost:3000"},
	"LOG_LEVEL":            "info",
	"LOG_ENCODING":         "json",
	"AI_PROVIDER":          ProviderOpenAI,
	"AI_TEMPERATURE":       0.7,
	"AI_TIMEOUT":           "120s",
	"OPENAI_API_KEY":       "",
	"OPENAI_BASE_URL":      "",
	"OPENAI_MODEL":         "gpt-4o",
	"GEMINI_API_KEY":       "",
	"GEMINI_MODEL":         "gemini-2.0-flash",
	"SESSION_STORE":        SessionStoreMemory,
	"SESSION_TTL":          "24h",
	"SESSION_LOCK_TTL":     "3m",
	"REDIS_ADDR":           "localhost:6379",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
}

// LoadConfig reads configuration from config.yaml in path (optional) and
// environment variables. Environment variables win.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// AutomaticEnv only reaches Unmarshal for keys viper already knows about.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate rejects settings the server cannot start with. A missing API key
// only warns: the server runs and AI calls fail until it is set.
func (c Config) Validate() error {
	switch c.AIProvider {
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			log.Println("WARN: OPENAI_API_KEY is not set.")
		}
	case ProviderGemini:
		if c.GeminiKey == "" {
			log.Println("WARN: GEMINI_API_KEY is not set.")
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q (want %q or %q)", c.AIProvider, ProviderOpenAI, ProviderGemini)
	}

	switch c.SessionStore {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q (want %q or %q)", c.SessionStore, SessionStoreMemory, SessionStoreRedis)
	}

	if c.SessionLockTTL <= 0 {
		return errors.New("SESSION_LOCK_TTL must be positive")
	}
	// A lock that expires before the model call ends lets a second request in.
	if c.AITimeout > 0 && c.SessionLockTTL <= c.AITimeout {
		return fmt.Errorf("SESSION_LOCK_TTL (%s) must be longer than AI_TIMEOUT (%s)", c.SessionLockTTL, c.AITimeout)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
