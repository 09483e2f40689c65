package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/getzep/pdffacts/internal"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const EnvPrefix = "PDFFACTS"

// keys lists every option so that ENV overrides are picked up even when no config file sets them.
var keys = []string{
	"server.host",
	"server.port",
	"server.max_request_size",
	"server.request_timeout",
	"log.level",
	"extraction.source",
	"extraction.max_pages",
	"analyzer.concurrency",
	"analyzer.max_pointers",
	"tracing.enabled",
	"tracing.endpoint",
}

var validate = validator.New()

// LoadConfig loads the config file and ENV variables into a Config struct. A config file is
// optional unless configFile is set explicitly. Options left unset fall back to defaultConfig,
// an option set to its zero value keeps it.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Debug("no config file found, using defaults and ENV")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every option of defaultConfig with viper, keyed the way the config
// file spells it.
func setDefaults(v *viper.Viper) error {
	out, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to encode config defaults: %w", err)
	}

	var sections map[string]map[string]any
	if err := yaml.Unmarshal(out, &sections); err != nil {
		return fmt.Errorf("failed to decode config defaults: %w", err)
	}

	for section, options := range sections {
		for option, value := range options {
			v.SetDefault(section+"."+option, value)
		}
	}
	return nil
}

// Validate checks the config against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config is invalid: %w", err)
	}
	return nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level := internal.ParseLogLevel(cfg.Log.Level)
	internal.SetLogLevel(level)
	internal.GetLogger().Info("Log level set to: ", level)
}

// YAML renders the effective config, used by --dump-config.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
