package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServiceName string      `mapstructure:"service_name"`
	Env         string      `mapstructure:"env"`
	Port        string      `mapstructure:"port"`
	Services    Services    `mapstructure:"services"`
	HTTP        HTTP        `mapstructure:"http"`
	Reservation Reservation `mapstructure:"reservation"`
	Telemetry   Telemetry   `mapstructure:"telemetry"`
}

// Services holds the base URLs of the downstream collaborators. Constructed
// once at process start and injected into the clients; nothing reads
// service locations from ambient global state.
type Services struct {
	LibraryURL     string `mapstructure:"library_url"`
	RatingURL      string `mapstructure:"rating_url"`
	ReservationURL string `mapstructure:"reservation_url"`
}

type HTTP struct {
	ClientTimeoutSeconds int `mapstructure:"client_timeout_seconds"`
}

// Reservation controls the orchestration's failure policy. FailOpen selects
// the fallback when the rented-count read fails: true treats the user as
// having no active rentals, false fails the request.
type Reservation struct {
	FailOpen bool `mapstructure:"fail_open"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// ClientTimeout returns the per-call timeout for outbound HTTP requests
func (c *Config) ClientTimeout() time.Duration {
	return time.Duration(c.HTTP.ClientTimeoutSeconds) * time.Second
}

func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("unable to get current file")
	}

	configDir := filepath.Join(filepath.Dir(filename))
	viper.SetConfigName(getConfigName())
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	// Allow environment variables to override config
	viper.AutomaticEnv()
	viper.SetEnvPrefix("GATEWAY")

	setDefaultsFromEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults and environment variables are a complete configuration;
		// a config file is optional outside local development.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

// setDefaultsFromEnv sets defaults from environment variables
func setDefaultsFromEnv() {
	viper.SetDefault("service_name", "gateway-service")
	viper.SetDefault("env", getEnv("ENV", "local"))
	viper.SetDefault("port", getEnv("PORT", "8080"))

	viper.SetDefault("services.library_url", getEnv("LIBRARY_SERVICE_URL", "http://library-service:8060"))
	viper.SetDefault("services.rating_url", getEnv("RATING_SERVICE_URL", "http://rating-service:8050"))
	viper.SetDefault("services.reservation_url", getEnv("RESERVATION_SERVICE_URL", "http://reservation-service:8070"))

	viper.SetDefault("http.client_timeout_seconds", 5)

	viper.SetDefault("reservation.fail_open", true)

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.otlp_endpoint", getEnv("OTLP_ENDPOINT", "localhost:4318"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
