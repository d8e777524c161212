package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"
	"github.com/spf13/viper"
)

type (
	app struct {
		Name     string `json:"name" mapstructure:"name"`
		Env      string `json:"env" mapstructure:"env" validate:"required"`
		Timezone string `json:"timezone" mapstructure:"timezone"`
		Version  string `json:"version" mapstructure:"version"`
	}

	database struct {
		Host     string            `json:"host" mapstructure:"host" validate:"required"`
		Port     int               `json:"port" mapstructure:"port" validate:"min=1,max=65535"`
		Name     string            `json:"name" mapstructure:"name" validate:"required"`
		User     string            `json:"user" mapstructure:"user" validate:"required"`
		Password string            `json:"password" mapstructure:"password"`
		Params   map[string]string `json:"params,omitempty" mapstructure:"params"` // extra DSN parameters, e.g. tls
	}

	output struct {
		Dir    string `json:"dir" mapstructure:"dir" validate:"required"`
		Width  int    `json:"width" mapstructure:"width" validate:"min=200"`
		Height int    `json:"height" mapstructure:"height" validate:"min=200"`
	}

	Config struct {
		App      app      `json:"app" mapstructure:"app"`
		Database database `json:"database" mapstructure:"database"`
		Output   output   `json:"output" mapstructure:"output"`
	}
)

// Credential overrides read from the environment
var envBindings = map[string]string{
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.name":     "DB_NAME",
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
}

var cfg *Config

// Init loads configuration from .config file in the working directory
func Init() error {
	return InitWithPath("./")
}

// InitWithPath loads configuration from the .config file found in dir.
// A missing file is not an error: defaults and environment overrides apply.
func InitWithPath(dir string) error {
	v := viper.New()
	v.SetConfigName(".config")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(loaded); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cfg = loaded
	return nil
}

// setDefaults registers the values used when neither file nor environment set a key
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "soc-dashboard")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.name", "soc_db")
	v.SetDefault("database.user", "admin")
	v.SetDefault("database.password", "")

	v.SetDefault("output.dir", "charts")
	v.SetDefault("output.width", 1400)
	v.SetDefault("output.height", 800)
}

// Get returns the current configuration instance
func Get() *Config {
	return cfg
}
