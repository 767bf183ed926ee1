package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	DBDSN    string `mapstructure:"DB_DSN"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFmt   string `mapstructure:"LOG_FORMAT"`
	AppName  string `mapstructure:"APP_NAME"`

	// Calendario con el que se evalúan los presets de fecha.
	Timezone string `mapstructure:"TIMEZONE"`

	AuthBaseURL string        `mapstructure:"AUTH_BASE_URL"`
	AuthAPIKey  string        `mapstructure:"AUTH_API_KEY"`
	AuthTimeout time.Duration `mapstructure:"AUTH_TIMEOUT"`
}

var keys = []string{
	"PORT", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"TIMEZONE", "AUTH_BASE_URL", "AUTH_API_KEY", "AUTH_TIMEOUT",
}

// DefaultEnvFile es el archivo opcional que lee Load.
const DefaultEnvFile = ".env"

// Load lee variables de entorno y, si existe, un archivo .env.
func Load() (*Config, error) {
	return LoadFile(DefaultEnvFile)
}

// LoadFile es Load con otro archivo env. Un archivo ausente se ignora;
// uno presente pero inválido es error. Las variables de entorno ganan.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "mediconnect")
	v.SetDefault("TIMEZONE", "Asia/Seoul")
	v.SetDefault("AUTH_TIMEOUT", "5s")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")
	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}
	cfg.AuthBaseURL = strings.TrimSpace(cfg.AuthBaseURL)
	cfg.AuthAPIKey = strings.TrimSpace(cfg.AuthAPIKey)

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Location resuelve TIMEZONE; si no existe usa time.Local.
func (c *Config) Location() *time.Location {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// AuthConfigured indica si hay que verificar tokens contra el servicio de identidad.
func (c *Config) AuthConfigured() bool {
	return c.AuthBaseURL != "" && c.AuthAPIKey != ""
}
