package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort               = "8080"
	defaultCurrencyAPIBaseURL = "https://api.currencyapi.com/v3/latest"
	defaultCurrencyAPITimeout = 10 * time.Second
	defaultRateLimit          = "60-M"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Rate provider (currencyapi.com)
	CurrencyAPIKey     string        `mapstructure:"CURRENCYAPI_APIKEY"`
	CurrencyAPIBaseURL string        `mapstructure:"CURRENCYAPI_BASE_URL"`
	CurrencyAPITimeout time.Duration `mapstructure:"CURRENCYAPI_TIMEOUT"`

	// RateLimit is an ulule/limiter formatted rate ("60-M"). Empty disables limiting,
	// set RATE_LIMIT to an empty value or "off" to get that.
	RateLimit          string   `mapstructure:"RATE_LIMIT"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("CURRENCYAPI_APIKEY", "")
	v.SetDefault("CURRENCYAPI_BASE_URL", defaultCurrencyAPIBaseURL)
	v.SetDefault("CURRENCYAPI_TIMEOUT", defaultCurrencyAPITimeout.String())
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Environment variables override the defaults (and anything godotenv put there).
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.CurrencyAPIKey = v.GetString("CURRENCYAPI_APIKEY")
	if cfg.CurrencyAPIKey == "" {
		log.Println("Warning: CURRENCYAPI_APIKEY not set. Requests to the rate provider will be rejected.")
	}

	cfg.CurrencyAPIBaseURL = v.GetString("CURRENCYAPI_BASE_URL")
	if cfg.CurrencyAPIBaseURL == "" {
		cfg.CurrencyAPIBaseURL = defaultCurrencyAPIBaseURL
	}

	// Load provider timeout (e.g., "10s", "1m"); "0s" means no timeout
	timeoutStr := v.GetString("CURRENCYAPI_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout < 0 {
		timeout = defaultCurrencyAPITimeout
		log.Printf("Warning: Invalid value for CURRENCYAPI_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	cfg.CurrencyAPITimeout = timeout

	cfg.RateLimit = rateLimitFrom(v)
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg
}

// rateLimitFrom reads RATE_LIMIT. Viper skips empty env vars and would fall back
// to the default, so an explicitly empty value is looked up directly.
func rateLimitFrom(v *viper.Viper) string {
	if raw, ok := os.LookupEnv("RATE_LIMIT"); ok && strings.TrimSpace(raw) == "" {
		return ""
	}
	limit := strings.TrimSpace(v.GetString("RATE_LIMIT"))
	if strings.EqualFold(limit, "off") {
		return ""
	}
	return limit
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
