package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/yesno/internal/answer"
)

type Config struct {
	API     APIConfig     `mapstructure:"api" yaml:"api"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

type APIConfig struct {
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint" validate:"required,http_url"`
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent" validate:"required"`
}

type DisplayConfig struct {
	NoColor bool   `mapstructure:"no_color" yaml:"no_color"`
	Format  string `mapstructure:"format" yaml:"format" validate:"oneof=text json yaml"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/yesno")
	}

	v.SetDefault("api.endpoint", answer.DefaultEndpoint)
	v.SetDefault("api.user_agent", answer.DefaultUserAgent)
	v.SetDefault("display.no_color", false)
	v.SetDefault("display.format", "text")

	if err := v.BindEnv("api.endpoint", "YESNO_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind YESNO_ENDPOINT environment variable: %w", err)
	}
	if err := v.BindEnv("display.no_color", "YESNO_NO_COLOR"); err != nil {
		return nil, fmt.Errorf("failed to bind YESNO_NO_COLOR environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every invalid field in one error.
func (cfg *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	err = validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct() > %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldErr.Translate(trans))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
