package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	Port string `mapstructure:"port"`

	DB struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"db"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Auth struct {
		SigningKey    string        `mapstructure:"signing_key"`
		TokenTTL      time.Duration `mapstructure:"token_ttl"`
		AdminUsername string        `mapstructure:"admin_username"`
		AdminPassword string        `mapstructure:"admin_password"`
	} `mapstructure:"auth"`

	Alerts struct {
		MonitorInterval time.Duration `mapstructure:"monitor_interval"`
		// Timezone decides which calendar day counts as "today".
		Timezone string `mapstructure:"timezone"`
	} `mapstructure:"alerts"`

	WS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"ws"`

	RateLimit struct {
		SignInPerMinute float64 `mapstructure:"sign_in_per_minute"`
		Burst           int     `mapstructure:"burst"`
	} `mapstructure:"ratelimit"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "vitta.db")
	v.SetDefault("log.level", "info")
	// every key needs a default so AutomaticEnv can override it on Unmarshal
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("auth.admin_username", "")
	v.SetDefault("auth.admin_password", "")
	v.SetDefault("alerts.monitor_interval", 15*time.Minute)
	v.SetDefault("alerts.timezone", "Local")
	v.SetDefault("ws.allowed_origins", []string{})
	v.SetDefault("ratelimit.sign_in_per_minute", 5)
	v.SetDefault("ratelimit.burst", 5)
}

// Load reads an optional .env file, then configs/config.yml (or the file
// named by path), then environment overrides such as AUTH_SIGNING_KEY.
// A missing config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return fmt.Errorf("auth.signing_key must be set")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	if c.Alerts.MonitorInterval <= 0 {
		return fmt.Errorf("alerts.monitor_interval must be positive")
	}
	if _, err := time.LoadLocation(c.Alerts.Timezone); err != nil {
		return fmt.Errorf("alerts.timezone: %w", err)
	}
	if c.RateLimit.SignInPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("ratelimit.sign_in_per_minute and ratelimit.burst must be positive")
	}
	return nil
}

// Location returns the zone alerts are evaluated in. Unknown names fall back
// to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Alerts.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
