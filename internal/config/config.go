package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	// Driver is "memory" or "postgres".
	Driver      string `mapstructure:"driver"`
	DatabaseURL string `mapstructure:"database_url"`
	Migrate     bool   `mapstructure:"migrate"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type AuthConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	JWTSecret         string        `mapstructure:"jwt_secret"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
	AdminUsername     string        `mapstructure:"admin_username"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DashboardConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	APIBaseURL string        `mapstructure:"api_base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	TimeZone   string        `mapstructure:"time_zone"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.database_url", "")
	v.SetDefault("storage.migrate", true)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 30*time.Second)

	v.SetDefault("ratelimit.rps", 10.0)
	v.SetDefault("ratelimit.burst", 20)

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 15*time.Minute)
	v.SetDefault("auth.admin_username", "admin")
	v.SetDefault("auth.admin_password_hash", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("dashboard.enabled", true)
	v.SetDefault("dashboard.api_base_url", "http://localhost:8080/api/")
	v.SetDefault("dashboard.timeout", 10*time.Second)
	v.SetDefault("dashboard.time_zone", "UTC")
}

// Load reads defaults, then the optional config file, then LIMS_* environment
// variables. An empty path falls back to ./lims.yaml when present.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LIMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("storage.database_url", "LIMS_STORAGE_DATABASE_URL", "DATABASE_URL")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lims")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case "memory":
	case "postgres":
		if c.Storage.DatabaseURL == "" {
			return errors.New("storage.database_url is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required when auth is enabled")
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("ratelimit values cannot be negative")
	}
	if _, err := time.LoadLocation(c.Dashboard.TimeZone); err != nil {
		return fmt.Errorf("dashboard.time_zone: %w", err)
	}
	return nil
}
