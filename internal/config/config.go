package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
	GoogleSheets   GoogleSheetsConfig   `toml:"google_sheets"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// GoogleCalendarConfig настройки клиента Google Calendar API
// Идентификатор календаря и токен берутся из окружения (см. Env)
type GoogleCalendarConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// GoogleSheetsConfig настройки клиента Google Sheets API (прайс-лист)
type GoogleSheetsConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// Env секреты и идентификаторы из окружения (.env поддерживается через godotenv)
type Env struct {
	GoogleAPIToken      string
	GoogleCalendarID    string
	GoogleSpreadsheetID string
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.GoogleCalendar.URL == "" {
		cfg.GoogleCalendar.URL = "https://www.googleapis.com/calendar/v3"
	}
	if cfg.GoogleSheets.URL == "" {
		cfg.GoogleSheets.URL = "https://sheets.googleapis.com/v4"
	}

	return &cfg, nil
}

// LoadEnv читает обязательные переменные окружения
func LoadEnv() (*Env, error) {
	env := &Env{
		GoogleAPIToken:      os.Getenv("GOOGLE_API_TOKEN"),
		GoogleCalendarID:    os.Getenv("GOOGLE_CALENDAR_ID"),
		GoogleSpreadsheetID: os.Getenv("GOOGLE_SPREADSHEET_ID"),
	}

	if env.GoogleAPIToken == "" || env.GoogleCalendarID == "" {
		return nil, fmt.Errorf("google calendar credentials are not set (GOOGLE_API_TOKEN / GOOGLE_CALENDAR_ID)")
	}

	return env, nil
}
