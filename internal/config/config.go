// Package config loads server and client settings from the environment
// and an optional ordena.yaml.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SuppressionNone   = "none"
	SuppressionWindow = "window"
)

// Config holds every setting read at startup.
type Config struct {
	Port     int
	DBPath   string
	PhotoDir string
	LogLevel string

	GeocoderURL       string
	GeocoderUserAgent string

	LowStockThreshold float64
	AlertSuppression  string
	AlertWindow       time.Duration
	RedisAddr         string
	KafkaBrokers      []string
	KafkaTopic        string

	JWTSecret     string
	TokenDuration time.Duration

	UndoWindow time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("db_path", "./data/Restaurants.db")
	v.SetDefault("photo_dir", "./data/photos")
	v.SetDefault("log_level", "info")
	v.SetDefault("geocoder_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder_user_agent", "ordena/1.0")
	v.SetDefault("low_stock_threshold", 2.0)
	v.SetDefault("alert_suppression", SuppressionNone)
	v.SetDefault("alert_window", time.Hour)
	v.SetDefault("redis_addr", "")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic", "ordena.low-stock")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_duration", 30*24*time.Hour)
	v.SetDefault("undo_window", 2750*time.Millisecond)
}

// Load reads the configuration. Environment variables (PORT, DB_PATH, ...) override
// ordena.yaml in the working directory, which overrides the defaults.
func Load() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, configDir string) (*Config, error) {
	setDefaults(v)
	v.SetConfigName("ordena")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Port:              v.GetInt("port"),
		DBPath:            v.GetString("db_path"),
		PhotoDir:          v.GetString("photo_dir"),
		LogLevel:          v.GetString("log_level"),
		GeocoderURL:       v.GetString("geocoder_url"),
		GeocoderUserAgent: v.GetString("geocoder_user_agent"),
		LowStockThreshold: v.GetFloat64("low_stock_threshold"),
		AlertSuppression:  strings.ToLower(strings.TrimSpace(v.GetString("alert_suppression"))),
		AlertWindow:       v.GetDuration("alert_window"),
		RedisAddr:         v.GetString("redis_addr"),
		KafkaBrokers:      splitList(v.GetString("kafka_brokers")),
		KafkaTopic:        v.GetString("kafka_topic"),
		JWTSecret:         v.GetString("jwt_secret"),
		TokenDuration:     v.GetDuration("token_duration"),
		UndoWindow:        v.GetDuration("undo_window"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid PORT %d", c.Port)
	case c.DBPath == "":
		return errors.New("DB_PATH must not be empty")
	case !(c.LowStockThreshold > 0):
		return fmt.Errorf("LOW_STOCK_THRESHOLD must be positive, got %v", c.LowStockThreshold)
	case c.AlertSuppression != SuppressionNone && c.AlertSuppression != SuppressionWindow:
		return fmt.Errorf("invalid ALERT_SUPPRESSION %q (want %s or %s)", c.AlertSuppression, SuppressionNone, SuppressionWindow)
	case c.AlertSuppression == SuppressionWindow && c.AlertWindow <= 0:
		return fmt.Errorf("ALERT_WINDOW must be positive, got %s", c.AlertWindow)
	}
	return nil
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AuthEnabled reports whether RPCs require a device token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
