package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	ServiceHost string
	ServicePort int
	// Storage is StoragePostgres or StorageMemory.
	Storage string

	RedisEndpoint string
	RedisPassword string
	CacheTTL      time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

func NewConfig() (*Config, error) {
	return Load(viper.New())
}

// Load reads config/config.toml (or $CONFIG_NAME), then .env, then the
// bound environment variables, into a Config.
func Load(v *viper.Viper) (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("Storage", StoragePostgres)
	v.SetDefault("CacheTTL", 10*time.Minute)
	v.SetDefault("MinioBucket", "starfleet-snapshots")

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Warnf("config file %q not found, using defaults", configName)
	}

	err = godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}

	for key, env := range map[string]string{
		"Storage":        "STORAGE",
		"RedisEndpoint":  "REDIS_ENDPOINT",
		"RedisPassword":  "REDIS_PASSWORD",
		"MinioEndpoint":  "MINIO_ENDPOINT",
		"MinioAccessKey": "MINIO_ACCESS_KEY",
		"MinioSecretKey": "MINIO_SECRET_KEY",
		"MinioBucket":    "MINIO_BUCKET",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logrus.Info("config parsed")
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q, want %q or %q", c.Storage, StoragePostgres, StorageMemory)
	}
	if c.ServicePort <= 0 || c.ServicePort > 65535 {
		return fmt.Errorf("service port %d out of range", c.ServicePort)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServiceHost, c.ServicePort)
}
