package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrParserURLRequired is returned when parser.url is not configured.
var ErrParserURLRequired = errors.New("parser.url is required")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Dashboard
	Parser         ParserConfig
	Session        SessionConfig
	RateLimit      RateLimitConfig
	GoogleCalendar GoogleCalendarConfig
	Chat           ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig points at the syllabus parsing service.
type ParserConfig struct {
	URL string
	// Timeout bounds each parser call. Zero means no timeout.
	Timeout time.Duration
}

type SessionConfig struct {
	MaxSessions int
	TTL         time.Duration
}

type RateLimitConfig struct {
	UploadPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

type ChatConfig struct {
	Greeting string
	Reply    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = splitList(v.GetString("http_server.allowed_origins"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Parsing service
	cfg.Parser.URL = v.GetString("parser.url")
	if parserURL := v.GetString("parser_url"); parserURL != "" {
		cfg.Parser.URL = parserURL
	}
	cfg.Parser.Timeout = v.GetDuration("parser.timeout")

	// Sessions
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.RateLimit.UploadPerMin = v.GetInt("rate_limit.upload_per_min")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = v.GetString("google_calendar.timezone")

	// Chat panel
	cfg.Chat.Greeting = v.GetString("chat.greeting")
	cfg.Chat.Reply = v.GetString("chat.reply")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Parser.URL == "" {
		return ErrParserURLRequired
	}
	if cfg.Parser.Timeout < 0 {
		return fmt.Errorf("parser.timeout must not be negative, got %s", cfg.Parser.Timeout)
	}
	if cfg.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive, got %d", cfg.Session.MaxSessions)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("parser.timeout", "0s")
	v.SetDefault("session.max_sessions", 1000)
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("rate_limit.upload_per_min", 30)

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.timezone", "UTC")
}

// splitList splits a comma separated value, since viper does not parse
// arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
