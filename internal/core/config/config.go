package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/schema"
)

type Log struct {
	Level string
	JSON  bool
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Pool holds the driver and connection-pool knobs that sit outside the
// validated AppConfig record (which carries the URL and the connection cap).
type Pool struct {
	Driver             string
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Config struct {
	App   schema.AppConfig `mapstructure:"app"`
	Log   Log              `mapstructure:"log"`
	DB    Pool             `mapstructure:"db"`
	Redis Redis            `mapstructure:"redis"`
}

// Load reads the YAML file at path (CONFIG_PATH, then the local default,
// when empty), applies APP_* environment overrides, and validates the
// resulting AppConfig record. A config that fails validation is rejected as
// a whole.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", schema.DefaultAppName)
	v.SetDefault("app.port", schema.DefaultPort)
	v.SetDefault("app.debug", false)
	v.SetDefault("app.max_connections", schema.DefaultMaxConnections)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.maxidleconns", 10)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.loglevel", "warn")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.App.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	return &c, nil
}
