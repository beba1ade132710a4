package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	ErrLoad     = errors.New("config: failed to load")
	ErrValidate = errors.New("config: invalid configuration")
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	Weather  WeatherConfig  `toml:"weather"`
	Uploads  UploadsConfig  `toml:"uploads"`
	Booking  BookingConfig  `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

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

// RedisConfig пустой Addr - redis не используется
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AdminConfig struct {
	Token string `toml:"token"`
}

type WeatherConfig struct {
	BaseURL  string  `toml:"base_url"`
	APIKey   string  `toml:"api_key"`
	Lat      float64 `toml:"lat"`
	Lon      float64 `toml:"lon"`
	Timeout  int     `toml:"timeout"`
	CacheTTL int     `toml:"cache_ttl"`
}

type UploadsConfig struct {
	Dir           string `toml:"dir"`
	PublicBaseURL string `toml:"public_base_url"`
	RoutePrefix   string `toml:"route_prefix"`
}

type BookingConfig struct {
	// Timezone для вычисления "сегодня" на дашборде и даты в номере брони
	Timezone string `toml:"timezone"`
	// BulkParallelism ограничение параллелизма массовых операций
	BulkParallelism int `toml:"bulk_parallelism"`
}

// Load читает TOML-файл, затем .env (если есть) и переменные окружения с секретами
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: Load - decode %s: %v", ErrLoad, path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: Load - read .env: %v", ErrLoad, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		key    string
		target *string
	}{
		{"DB_PASSWORD", &c.Database.Password},
		{"REDIS_PASSWORD", &c.Redis.Password},
		{"ADMIN_TOKEN", &c.Admin.Token},
		{"WEATHER_API_KEY", &c.Weather.APIKey},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok && v != "" {
			*o.target = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "villa_booking"
	}
	if c.Weather.BaseURL == "" {
		c.Weather.BaseURL = "https://api.openweathermap.org"
	}
	if c.Weather.Timeout == 0 {
		c.Weather.Timeout = 5
	}
	if c.Weather.CacheTTL == 0 {
		c.Weather.CacheTTL = 600
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = "uploads"
	}
	if c.Uploads.RoutePrefix == "" {
		c.Uploads.RoutePrefix = "/uploads"
	}
	c.Uploads.RoutePrefix = "/" + strings.Trim(c.Uploads.RoutePrefix, "/")
	// без CDN файлы раздает сам сервис
	if c.Uploads.PublicBaseURL == "" {
		c.Uploads.PublicBaseURL = c.Uploads.RoutePrefix
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "Asia/Seoul"
	}
	if c.Booking.BulkParallelism == 0 {
		c.Booking.BulkParallelism = 8
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Database.User == "" {
		problems = append(problems, "database.user is required")
	}
	if c.Admin.Token == "" {
		problems = append(problems, "admin.token (or ADMIN_TOKEN) is required")
	}
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d is out of range", c.Server.HTTPPort))
	}
	if c.Booking.BulkParallelism < 1 {
		problems = append(problems, "booking.bulk_parallelism must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidate, strings.Join(problems, "; "))
	}
	return nil
}
