package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"

	RendererMaroto   = "maroto"
	RendererChromedp = "chromedp"
)

type Config struct {
	Port        int
	Environment string
	Log         LogConfig
	State       StateConfig
	Session     SessionConfig
	Redis       RedisConfig
	DynamoDB    DynamoDBConfig
	PDF         PDFConfig
	Timezone    string
}

type LogConfig struct {
	Level  string
	Format string
}

// StateConfig selects the long-lived store for saved selections.
type StateConfig struct {
	Backend string
	IdleTTL time.Duration
}

type SessionConfig struct {
	Backend      string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DynamoDBConfig struct {
	Region   string
	Endpoint string
	Table    string
}

type PDFConfig struct {
	Renderer   string
	ChromePath string
	FontPath   string
	Timeout    time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STATE_BACKEND", BackendMemory)
	v.SetDefault("SELECTION_IDLE_TTL", "30m")
	v.SetDefault("SESSION_BACKEND", BackendMemory)
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("SESSION_COOKIE", "estimate_session")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("STATE_TABLE", "estimate_state")
	v.SetDefault("PDF_RENDERER", RendererMaroto)
	v.SetDefault("CHROME_PATH", "")
	v.SetDefault("PDF_FONT_PATH", "")
	v.SetDefault("PDF_TIMEOUT", "30s")
	v.SetDefault("TIMEZONE", "Asia/Tokyo")
}

// Load reads configuration from the environment, a .env file and an optional
// config.yaml in . or ./config. Environment values win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:        v.GetInt("PORT"),
		Environment: v.GetString("APP_ENV"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		State: StateConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("STATE_BACKEND"))),
			IdleTTL: v.GetDuration("SELECTION_IDLE_TTL"),
		},
		Session: SessionConfig{
			Backend:      strings.ToLower(strings.TrimSpace(v.GetString("SESSION_BACKEND"))),
			TTL:          v.GetDuration("SESSION_TTL"),
			CookieName:   v.GetString("SESSION_COOKIE"),
			CookieSecure: v.GetBool("COOKIE_SECURE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		DynamoDB: DynamoDBConfig{
			Region:   v.GetString("AWS_REGION"),
			Endpoint: v.GetString("DYNAMODB_ENDPOINT"),
			Table:    v.GetString("STATE_TABLE"),
		},
		PDF: PDFConfig{
			Renderer:   strings.ToLower(strings.TrimSpace(v.GetString("PDF_RENDERER"))),
			ChromePath: v.GetString("CHROME_PATH"),
			FontPath:   v.GetString("PDF_FONT_PATH"),
			Timeout:    v.GetDuration("PDF_TIMEOUT"),
		},
		Timezone: v.GetString("TIMEZONE"),
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	switch c.State.Backend {
	case BackendMemory, BackendDynamoDB:
	default:
		return fmt.Errorf("unsupported STATE_BACKEND %q", c.State.Backend)
	}
	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("unsupported SESSION_BACKEND %q", c.Session.Backend)
	}
	switch c.PDF.Renderer {
	case RendererMaroto, RendererChromedp:
	default:
		return fmt.Errorf("unsupported PDF_RENDERER %q", c.PDF.Renderer)
	}
	if strings.TrimSpace(c.Session.CookieName) == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured time zone, UTC when it cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
