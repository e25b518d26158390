package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort         = 8080
	defaultEnv          = "development"
	defaultDSN          = "root:password@tcp(127.0.0.1:3306)/parish_core?charset=utf8mb4&parseTime=True&loc=UTC"
	defaultRedisURL     = "redis://localhost:6379/0"
	defaultUTCOffset    = 1 // site civil time is UTC+1 (Lagos)
	defaultFetchTimeout = 10
	defaultAdminEmail   = "chaplain@parish.local"
	defaultAdminName    = "Rev. Fr. Chaplain"
	defaultCalendarAPI  = "https://calapi.inadiutorium.cz/api/v0/en/calendars/default"
	defaultReadingsAURL = "https://www.ewtn.com/catholicism/daily-readings"
	defaultReadingsBURL = "https://bible.usccb.org/bible/readings"
	defaultSaintBioURL  = "https://www.catholic.org/saints/saint.php"
	defaultChatAIModel  = "gpt-4o-mini"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int      `yaml:"port"`
	DSN            string   `yaml:"dsn"`
	RedisURL       string   `yaml:"redis_url"`
	Env            string   `yaml:"env"` // "development" | "production"
	JWTSecret      string   `yaml:"jwt_secret"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// UTCOffsetHours fixes the civil date used as the daily-content
	// cache key. The whole pipeline uses this single offset; it is
	// never derived from the host clock's zone.
	UTCOffsetHours int `yaml:"utc_offset_hours"`

	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds"`

	Sources SourcesConfig `yaml:"sources"`
	ChatAI  ChatAIConfig  `yaml:"chat_ai"`
	Admin   AdminSeed     `yaml:"admin"`
}

// SourcesConfig holds upstream base URLs for the daily-content pipeline.
// Overridable so tests and mirrors can point elsewhere.
type SourcesConfig struct {
	CalendarAPI   string `yaml:"calendar_api"`
	ReadingsEWTN  string `yaml:"readings_ewtn"`
	ReadingsUSCCB string `yaml:"readings_usccb"`
	SaintBio      string `yaml:"saint_bio"`
}

// ChatAIConfig configures the optional OpenAI-compatible answer
// provider for the chat endpoint. Disabled when APIKey is empty.
type ChatAIConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// AdminSeed describes the default super_admin created when the users
// table is empty.
type AdminSeed struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Load reads YAML config from path (missing file is not an error),
// applies environment overrides, then defaults.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.ToLower(c.Env) != "production"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("UTC_OFFSET_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UTCOffsetHours = n
		}
	}
	if v := os.Getenv("CHAT_AI_API_KEY"); v != "" {
		cfg.ChatAI.APIKey = v
	}
	if v := os.Getenv("CHAT_AI_ENDPOINT"); v != "" {
		cfg.ChatAI.Endpoint = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.Admin.Email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.DSN == "" {
		cfg.DSN = defaultDSN
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = defaultRedisURL
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.UTCOffsetHours == 0 {
		cfg.UTCOffsetHours = defaultUTCOffset
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = defaultFetchTimeout
	}
	if cfg.Sources.CalendarAPI == "" {
		cfg.Sources.CalendarAPI = defaultCalendarAPI
	}
	if cfg.Sources.ReadingsEWTN == "" {
		cfg.Sources.ReadingsEWTN = defaultReadingsAURL
	}
	if cfg.Sources.ReadingsUSCCB == "" {
		cfg.Sources.ReadingsUSCCB = defaultReadingsBURL
	}
	if cfg.Sources.SaintBio == "" {
		cfg.Sources.SaintBio = defaultSaintBioURL
	}
	if cfg.ChatAI.Model == "" {
		cfg.ChatAI.Model = defaultChatAIModel
	}
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = defaultAdminEmail
	}
	if cfg.Admin.Name == "" {
		cfg.Admin.Name = defaultAdminName
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
