/**
 * @description
 * This file handles the configuration management for the enrollment-service.
 * It uses the 'viper' library to load configuration from environment variables or an
 * optional .env file, providing a centralized and consistent way to manage settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	ServerPort                 string        `mapstructure:"SERVER_PORT"`
	DatabaseURL                string        `mapstructure:"DATABASE_URL"`
	RabbitMQURL                string        `mapstructure:"RABBITMQ_URL"`
	NotificationExchange       string        `mapstructure:"NOTIFICATION_EXCHANGE"`
	WelcomeEmailRoutingKey     string        `mapstructure:"WELCOME_EMAIL_ROUTING_KEY"`
	WelcomeEmailSubject        string        `mapstructure:"WELCOME_EMAIL_SUBJECT"`
	WelcomeEmailBody           string        `mapstructure:"WELCOME_EMAIL_BODY"`
	JWTSigningSecret           string        `mapstructure:"JWT_SIGNING_SECRET"`
	SubscriptionExpirySchedule string        `mapstructure:"SUBSCRIPTION_EXPIRY_SCHEDULE"`
	JobTimeout                 time.Duration `mapstructure:"JOB_TIMEOUT"`
}

var configKeys = []string{
	"SERVER_PORT",
	"PORT",
	"DATABASE_URL",
	"RABBITMQ_URL",
	"NOTIFICATION_EXCHANGE",
	"WELCOME_EMAIL_ROUTING_KEY",
	"WELCOME_EMAIL_SUBJECT",
	"WELCOME_EMAIL_BODY",
	"JWT_SIGNING_SECRET",
	"SUBSCRIPTION_EXPIRY_SCHEDULE",
	"JOB_TIMEOUT",
}

// LoadConfig reads configuration from environment variables and an optional .env file in path.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "8086")
	viper.SetDefault("NOTIFICATION_EXCHANGE", "notifications")
	viper.SetDefault("WELCOME_EMAIL_ROUTING_KEY", "email.welcome")
	viper.SetDefault("WELCOME_EMAIL_SUBJECT", "Welcome to Rafael.IO")
	viper.SetDefault("WELCOME_EMAIL_BODY", "Your subscription was completed successfully")
	viper.SetDefault("SUBSCRIPTION_EXPIRY_SCHEDULE", "@hourly")
	viper.SetDefault("JOB_TIMEOUT", "1m")

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	for _, key := range configKeys {
		_ = viper.BindEnv(key)
	}

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config file: %w", err)
		}
	}

	if err = viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}

	// Platforms such as Railway inject PORT; it wins over SERVER_PORT.
	if port := os.Getenv("PORT"); port != "" {
		config.ServerPort = port
	}

	return config, config.validate()
}

func (c Config) validate() error {
	var missing []string
	if strings.TrimSpace(c.DatabaseURL) == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if strings.TrimSpace(c.JWTSigningSecret) == "" {
		missing = append(missing, "JWT_SIGNING_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
