package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the CLI and the HTTP server
type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Data        DataConfig    `mapstructure:"data"`
	Order       OrderConfig   `mapstructure:"order"`
}

type ServerConfig struct {
	Address     string        `mapstructure:"address"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// SessionTTL is how long an idle session workspace is kept
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type DataConfig struct {
	// Dir is a CSV scenario directory; empty means the built-in demo data
	Dir string `mapstructure:"dir"`
}

type OrderConfig struct {
	CopyToClipboard bool `mapstructure:"copy_to_clipboard"`
}

// LoadConfig reads configuration from configFile, or from config.yaml in the
// working directory or ./config when configFile is empty. A missing default
// file is not an error. Environment variables prefixed SITEORDERS_ override
// file values, e.g. SITEORDERS_SERVER_ADDRESS.
func LoadConfig(configFile string) (Config, error) {
	var config Config

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SITEORDERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return config, fmt.Errorf("error loading configuration: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("error unmarshaling configuration: %w", err)
	}

	return config, nil
}

// Set default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	// HTTP Server
	v.SetDefault("server.address", "127.0.0.1:8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.session_ttl", "2h")

	// Logging
	v.SetDefault("logging.level", "info")

	v.SetDefault("data.dir", "")
	v.SetDefault("order.copy_to_clipboard", false)
}
