package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/nsw-workday-calc/internal/calendar"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents calendar configuration
type CalendarConfig struct {
	Timezone     string `mapstructure:"timezone"`      // IANA name or "Local"
	DatePattern  string `mapstructure:"date_pattern"`  // e.g. dd/MM/yyyy
	HolidaysFile string `mapstructure:"holidays_file"` // Optional gazetted one-off holidays
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Addr            string   `mapstructure:"addr"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	ShutdownTimeout string   `mapstructure:"shutdown_timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file, environment and defaults.
// Without an explicit path a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.nsw-workday-calc")
		v.AddConfigPath("/etc/nsw-workday-calc")
	}

	// WORKDAY_CALENDAR_TIMEZONE overrides calendar.timezone
	v.SetEnvPrefix("WORKDAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.timezone", "Local")
	v.SetDefault("calendar.date_pattern", "dd/MM/yyyy")
	v.SetDefault("calendar.holidays_file", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := calendar.NewFromName(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}
	if strings.TrimSpace(c.Calendar.DatePattern) == "" {
		return fmt.Errorf("calendar.date_pattern is required")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// NewCalendar builds the calendar for the configured timezone
func (c *CalendarConfig) NewCalendar() (calendar.Calendar, error) {
	return calendar.NewFromName(c.Timezone)
}

// GetShutdownTimeout returns the graceful shutdown timeout
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 30 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil || duration <= 0 {
		return 30 * time.Second
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
