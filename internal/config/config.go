package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"roomBooker/internal/calendar"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	Redis      Redis      `yaml:"redis"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Calendar   Calendar   `yaml:"calendar"`
	CORS       CORS       `yaml:"cors"`
	Retention  Retention  `yaml:"retention"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	Seed   bool   `yaml:"seed" env:"STORAGE_SEED" env-default:"false"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"room_booker"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Redis struct {
	Address    string `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password   string `yaml:"password" env:"REDIS_PASSWORD"`
	DB         int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Key        string `yaml:"key" env:"REDIS_KEY" env-default:"room_reservations"`
	MaxRetries int    `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"10"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type Calendar struct {
	StartHour int `yaml:"start_hour" env-default:"8"`
	EndHour   int `yaml:"end_hour" env-default:"18"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type Retention struct {
	// Reservations older than Days are deleted; 0 keeps everything.
	Days     int           `yaml:"days" env:"RETENTION_DAYS" env-default:"0"`
	Interval time.Duration `yaml:"interval" env-default:"1h"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Calendar) Hours() calendar.Hours {
	return calendar.Hours{Start: c.StartHour, End: c.EndHour}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverRedis, DriverPostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if err := c.Calendar.Hours().Validate(); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}

	if c.Retention.Days < 0 {
		return errors.New("retention.days must not be negative")
	}

	if c.Retention.Days > 0 && c.Retention.Interval <= 0 {
		return errors.New("retention.interval must be positive")
	}

	return nil
}
