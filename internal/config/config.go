package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML-файла при старте
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Admin      AdminConfig      `toml:"admin"`
	Payment    PaymentConfig    `toml:"payment"`
	Geo        GeoConfig        `toml:"geo"`
	Storage    StorageConfig    `toml:"storage"`
	Reconciler ReconcilerConfig `toml:"reconciler"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
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

// AdminConfig настройки доступа к административным операциям
type AdminConfig struct {
	Token string `toml:"token"`
}

// PaymentConfig настройки платёжного шлюза
type PaymentConfig struct {
	BaseURL     string `toml:"base_url"`
	APIKey      string `toml:"api_key"`
	Secret      string `toml:"secret"`
	ReturnURL   string `toml:"return_url"`
	CallbackURL string `toml:"callback_url"`
	Timeout     int    `toml:"timeout"` // секунды
}

// GeoConfig настройки провайдера геокодирования и расчёта расстояний
type GeoConfig struct {
	BaseURL           string `toml:"base_url"`
	Timeout           int    `toml:"timeout"` // секунды
	DefaultDistanceKm int    `toml:"default_distance_km"`
}

// StorageConfig настройки объектного хранилища фотографий
type StorageConfig struct {
	BaseURL       string `toml:"base_url"`
	APIKey        string `toml:"api_key"`
	PublicBaseURL string `toml:"public_base_url"`
	Timeout       int    `toml:"timeout"` // секунды
}

// ReconcilerConfig настройки обработки платёжных колбэков
type ReconcilerConfig struct {
	// Отсрочка удаления отменённой брони после отклонённого платежа (минуты)
	// Грейс-период для идемпотентной повторной доставки колбэка
	DeletionGraceMinutes int `toml:"deletion_grace_minutes"`
}

// Load загружает конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		return nil, fmt.Errorf("config: server.http_port is required")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database.host and database.dbname are required")
	}
	if cfg.Reconciler.DeletionGraceMinutes <= 0 {
		cfg.Reconciler.DeletionGraceMinutes = 30
	}
	if cfg.Geo.DefaultDistanceKm <= 0 {
		cfg.Geo.DefaultDistanceKm = 20
	}

	return &cfg, nil
}
