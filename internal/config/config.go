package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the configuration for the service.
type Config struct {
	Server struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"server"`
	DB struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
		// MaxConns bounds the shared connection pool.
		MaxConns int `mapstructure:"max_conns"`
	} `mapstructure:"db"`
	Redis struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"redis"`
	Upstream struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"upstream"`
	Auth struct {
		JWTSecret string        `mapstructure:"jwt_secret"`
		TokenTTL  time.Duration `mapstructure:"token_ttl"`
	} `mapstructure:"auth"`
	Recorder struct {
		QueueSize   int `mapstructure:"queue_size"`
		Workers     int `mapstructure:"workers"`
		MaxAttempts int `mapstructure:"max_attempts"`
	} `mapstructure:"recorder"`
	LogLevel string `mapstructure:"log_level"`
}

const (
	DefaultServerPort      = 8080
	DefaultDBMaxConns      = 5
	DefaultUpstreamTimeout = 60 * time.Second
	DefaultTokenTTL        = 7 * 24 * time.Hour
	DefaultQueueSize       = 256
	DefaultWorkers         = 2
	DefaultMaxAttempts     = 3
)

// Load reads configuration from config.yaml and the environment. Environment
// variables use the FLOWGATE prefix with underscores, e.g. FLOWGATE_DB_HOST.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetEnvPrefix("flowgate")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// no config file is fine, env and defaults cover everything
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", DefaultServerPort)
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.user", "postgres")
	viper.SetDefault("db.name", "flowgate")
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("db.max_conns", DefaultDBMaxConns)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("upstream.base_url", "https://api.coze.cn/v1")
	viper.SetDefault("upstream.timeout", DefaultUpstreamTimeout)
	viper.SetDefault("auth.token_ttl", DefaultTokenTTL)
	viper.SetDefault("recorder.queue_size", DefaultQueueSize)
	viper.SetDefault("recorder.workers", DefaultWorkers)
	viper.SetDefault("recorder.max_attempts", DefaultMaxAttempts)
	viper.SetDefault("log_level", "info")
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.Upstream.BaseURL == "" {
		return errors.New("upstream.base_url is required")
	}
	if c.Recorder.QueueSize <= 0 || c.Recorder.Workers <= 0 {
		return errors.New("recorder.queue_size and recorder.workers must be positive")
	}
	return nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
