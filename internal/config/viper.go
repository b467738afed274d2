// Package config provides Viper-based hierarchical configuration: defaults,
// then an optional config file, then BANKIMPORT_-prefixed environment
// variables, each layer overriding the previous.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Import struct {
		MaxRows             int     `mapstructure:"max_rows" yaml:"max_rows"`
		ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
		NegativeDebits      bool    `mapstructure:"negative_debits" yaml:"negative_debits"`
	} `mapstructure:"import" yaml:"import"`

	Export struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"export" yaml:"export"`

	Categorization struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"categorization" yaml:"categorization"`
}

// InitializeConfig loads the configuration: defaults, then an optional
// config.yaml from $HOME/.bank-import, .bank-import or the working
// directory, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bank-import")
	v.AddConfigPath(".bank-import")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BANKIMPORT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file should not abort; defaults and env
			// variables still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("import.max_rows", 50000)
	v.SetDefault("import.confidence_threshold", 0.5)
	v.SetDefault("import.negative_debits", true)

	v.SetDefault("export.delimiter", ",")
	v.SetDefault("export.include_headers", true)

	v.SetDefault("categorization.rules_file", "")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.Export.Delimiter) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	if config.Import.MaxRows < 1 {
		return fmt.Errorf("import.max_rows must be positive, got: %d", config.Import.MaxRows)
	}

	if config.Import.ConfidenceThreshold < 0.0 || config.Import.ConfidenceThreshold > 1.0 {
		return fmt.Errorf("import.confidence_threshold must be between 0.0 and 1.0, got: %f", config.Import.ConfidenceThreshold)
	}

	return nil
}
