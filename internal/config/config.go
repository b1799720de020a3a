package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	PreferencesStorageFile  = "file"
	PreferencesStorageRedis = "redis"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация приложения
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Auth        AuthConfig        `toml:"auth"`
	Preferences PreferencesConfig `toml:"preferences"`
	Listing     ListingConfig     `toml:"listing"`
	Reminder    ReminderConfig    `toml:"reminder"`
	Twilio      TwilioConfig      `toml:"twilio"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки identity-бэкенда
type AuthConfig struct {
	URL       string `toml:"url"`
	APIKey    string `toml:"api_key"`
	JWTSecret string `toml:"jwt_secret"`
	Timeout   int    `toml:"timeout"`
}

// PreferencesConfig хранилище языковых и валютных предпочтений клиента
type PreferencesConfig struct {
	Storage       string `toml:"storage"`
	FilePath      string `toml:"file_path"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
}

// ListingConfig настройки публичного списка компаний
type ListingConfig struct {
	Limit        int  `toml:"limit"`
	AllowPartial bool `toml:"allow_partial"`
}

// ReminderConfig настройки проверки завтрашних бронирований
type ReminderConfig struct {
	Enabled    bool   `toml:"enabled"`
	Schedule   string `toml:"schedule"`
	Timeout    int    `toml:"timeout"` // секунды на один запуск
	SMSEnabled bool   `toml:"sms_enabled"`
}

// TwilioConfig доступ к Twilio (используется только при reminder.sms_enabled)
type TwilioConfig struct {
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
}

// Load загружает конфигурацию из TOML файла
// Секреты могут быть переопределены переменными окружения (в т.ч. из .env)
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	switch c.Preferences.Storage {
	case PreferencesStorageFile:
		if c.Preferences.FilePath == "" {
			return fmt.Errorf("%w: preferences.file_path is required for file storage", ErrInvalidConfig)
		}
	case PreferencesStorageRedis:
		if c.Preferences.RedisAddr == "" {
			return fmt.Errorf("%w: preferences.redis_addr is required for redis storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown preferences storage %q", ErrInvalidConfig, c.Preferences.Storage)
	}
	if c.Listing.Limit <= 0 {
		return fmt.Errorf("%w: listing.limit must be positive", ErrInvalidConfig)
	}
	if c.Reminder.Enabled && c.Reminder.Schedule == "" {
		return fmt.Errorf("%w: reminder.schedule is required when reminder is enabled", ErrInvalidConfig)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking_platform",
		},
		Auth: AuthConfig{Timeout: 10},
		Preferences: PreferencesConfig{
			Storage:     PreferencesStorageFile,
			FilePath:    "preferences.json",
			RedisPrefix: "preferences",
		},
		Listing: ListingConfig{Limit: 6},
		Reminder: ReminderConfig{
			Schedule: "0 9 * * *",
			Timeout:  60,
		},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Auth.APIKey, "AUTH_API_KEY")
	setString(&cfg.Auth.JWTSecret, "AUTH_JWT_SECRET")
	setString(&cfg.Preferences.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.Twilio.AccountSID, "TWILIO_ACCOUNT_SID")
	setString(&cfg.Twilio.AuthToken, "TWILIO_AUTH_TOKEN")

	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
