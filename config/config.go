package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Intake specifics
	Storage        StorageConfig
	Intake         IntakeConfig
	GoogleCalendar GoogleCalendarConfig
	Gemini         GeminiConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	// Path to the sqlite database file. ":memory:" keeps everything in-process.
	Path string
}

type IntakeConfig struct {
	// Timezone used to interpret phrases like "tomorrow" and "friday".
	Timezone string
	// DuplicateWindow suppresses recurrence expansion when a pending sibling
	// already sits within this distance of the computed due date.
	DuplicateWindow time.Duration
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
}

type GeminiConfig struct {
	Enabled bool
	APIKey  string
	Model   string
	BaseURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Path = viper.GetString("storage.path")
	if dbPath := viper.GetString("storage_path"); dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	// Intake
	cfg.Intake.Timezone = viper.GetString("intake.timezone")
	cfg.Intake.DuplicateWindow = viper.GetDuration("intake.duplicate_window")
	if _, err := time.LoadLocation(cfg.Intake.Timezone); err != nil {
		return nil, fmt.Errorf("invalid intake.timezone %q: %w", cfg.Intake.Timezone, err)
	}
	if cfg.Intake.DuplicateWindow <= 0 {
		return nil, fmt.Errorf("intake.duplicate_window must be positive")
	}

	// Google Calendar
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Gemini subtask generation
	cfg.Gemini.Enabled = viper.GetBool("gemini.enabled")
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.BaseURL = viper.GetString("gemini.base_url")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}
	if cfg.Gemini.Enabled && cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required when gemini.enabled is true")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.path", "intake.db")
	viper.SetDefault("intake.timezone", "America/New_York")
	viper.SetDefault("intake.duplicate_window", "24h")
	viper.SetDefault("google_calendar.enabled", false)
	viper.SetDefault("gemini.enabled", false)
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
}
