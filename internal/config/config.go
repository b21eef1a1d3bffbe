// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from the environment.
type Config struct {
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	Port          string `mapstructure:"PORT"`
	DBHost        string `mapstructure:"DB_HOST"`
	DBPort        string `mapstructure:"DB_PORT"`
	DBUser        string `mapstructure:"DB_USER"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME"`
	DBSSLMode     string `mapstructure:"DB_SSLMODE"`
	Env           string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from environment variables with
// development defaults.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()

	// Set default values for development
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "chirp")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SESSION_SECRET", "")

	// Viper only unmarshals env-backed keys it has seen, so bind each one.
	keys := []string{
		"SESSION_SECRET", "PORT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"APP_ENV",
	}
	for _, k := range keys {
		if err := viper.BindEnv(k); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and meet
// security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	// The session cookie is signed with this secret; without it no session
	// can be issued or verified, so absence is a startup failure.
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}

	if c.IsProduction() {
		if len(c.SessionSecret) < 32 {
			return errors.New("SESSION_SECRET must be at least 32 characters in production")
		}
		if c.DBPassword == "password" || c.DBPassword == "" {
			return errors.New("a strong DB_PASSWORD is required in production")
		}
		if c.DBSSLMode == "disable" || c.DBSSLMode == "" {
			log.Println("WARNING: DB_SSLMODE is 'disable' in production. It is highly recommended to use SSL for database connections.")
		}
	} else {
		if len(c.SessionSecret) < 32 {
			log.Println("WARNING: SESSION_SECRET is shorter than 32 characters. Consider using a stronger secret for production.")
		}
	}

	return nil
}

// IsProduction reports whether the app runs with production settings
// (Secure session cookie, quiet SQL logging).
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}
