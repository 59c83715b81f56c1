package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration for the current environment. Values come
// from the YAML file for the environment, overridden by SP_* environment
// variables.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("SP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}
	if c.Database.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database.Database == "" {
		return errors.New("database name is required")
	}
	if c.Auth.Secret == "" {
		return errors.New("auth secret is required")
	}
	if c.Gateway.Mode != "simulated" && c.Gateway.Mode != "http" {
		return fmt.Errorf("unsupported gateway mode: %s", c.Gateway.Mode)
	}
	if c.Gateway.Mode == "http" && c.Gateway.URL == "" {
		return errors.New("gateway url is required in http mode")
	}
	if c.Dispatch.ConcurrencyLevel <= 0 {
		return fmt.Errorf("dispatch concurrency must be positive, got: %d", c.Dispatch.ConcurrencyLevel)
	}
	return nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 5) // minutes
	v.SetDefault("database.connMaxIdleTime", 5) // minutes
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 5) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("auth.tokenTTL", 24) // hours
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("dispatch.concurrencyLevel", 8)
	v.SetDefault("dispatch.gatewayTimeoutMs", 10000)

	v.SetDefault("gateway.mode", "simulated")
	v.SetDefault("gateway.failureRate", 0.05)
	v.SetDefault("gateway.delayMs", 50)

	v.SetDefault("admin.name", "System Administrator")
	v.SetDefault("admin.email", "admin@bulksms.com")
}

// getEnvironment determines the environment from SP_ENV
func getEnvironment() string {
	env := os.Getenv("SP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	if dbHost := os.Getenv("SP_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := getEnvInt("SP_DB_PORT", 0); dbPort > 0 {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("SP_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("SP_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("SP_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if sslMode := os.Getenv("SP_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}

	if serverHost := os.Getenv("SP_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := getEnvInt("SP_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}

	if logLevel := os.Getenv("SP_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	if secret := os.Getenv("SP_AUTH_SECRET"); secret != "" {
		v.Set("auth.secret", secret)
	}
	if ttl := getEnvInt("SP_AUTH_TOKEN_TTL_HOURS", 0); ttl > 0 {
		v.Set("auth.tokenTTL", ttl)
	}

	if concurrency := getEnvInt("SP_DISPATCH_CONCURRENCY_LEVEL", 0); concurrency > 0 {
		v.Set("dispatch.concurrencyLevel", concurrency)
	}
	if gatewayTimeout := getEnvInt("SP_DISPATCH_GATEWAY_TIMEOUT_MS", 0); gatewayTimeout > 0 {
		v.Set("dispatch.gatewayTimeoutMs", gatewayTimeout)
	}

	if mode := os.Getenv("SP_GATEWAY_MODE"); mode != "" {
		v.Set("gateway.mode", mode)
	}
	if url := os.Getenv("SP_GATEWAY_URL"); url != "" {
		v.Set("gateway.url", url)
	}
	if apiKey := os.Getenv("SP_GATEWAY_API_KEY"); apiKey != "" {
		v.Set("gateway.apiKey", apiKey)
	}

	if adminEmail := os.Getenv("SP_ADMIN_EMAIL"); adminEmail != "" {
		v.Set("admin.email", adminEmail)
	}
	if adminPassword := os.Getenv("SP_ADMIN_PASSWORD"); adminPassword != "" {
		v.Set("admin.password", adminPassword)
	}
}

// getEnvInt reads an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts duration fields from their raw values
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Hour
}
