package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverREST     = "rest"
	StoreDriverPostgres = "postgres"
)

// Config хранит всю конфигурацию приложения.
type Config struct {
	AppName string
	Port    string

	Store    StoreConfig
	Postgres PostgresConfig
	RabbitMQ RabbitMQConfig
	Auth     AuthConfig
	Pricing  PricingConfig

	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// StoreConfig - откуда брать объявления: удаленный сервис данных или PostgreSQL.
type StoreConfig struct {
	Driver  string
	URL     string
	APIKey  string
	Table   string
	Timeout time.Duration // 0 - без таймаута
}

type PostgresConfig struct {
	URL      string
	MaxConns int
	Migrate  bool
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
}

type AuthConfig struct {
	AdminEmail        string
	AdminFullName     string
	AdminPasswordHash string // bcrypt
	JWTSecret         string
	JWTTTL            time.Duration
}

type PricingConfig struct {
	Currency string
	Locale   string
}

type StdoutLogConfig struct {
	Level string
	JSON  bool
	Color bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// LoadConfig загружает конфигурацию из .env (если он есть) и переменных окружения.
func LoadConfig(envPath ...string) (*Config, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		AppName: getEnvAsString("APP_NAME", "listings-service"),
		Port:    getEnvAsString("PORT", "8080"),

		Store: StoreConfig{
			Driver:  strings.ToLower(getEnvAsString("STORE_DRIVER", StoreDriverREST)),
			URL:     getEnvAsString("STORE_URL", ""),
			APIKey:  getEnvAsString("STORE_API_KEY", ""),
			Table:   getEnvAsString("STORE_TABLE", "properties"),
			Timeout: getEnvAsDuration("STORE_TIMEOUT", 0),
		},
		Postgres: PostgresConfig{
			URL:      getEnvAsString("DATABASE_URL", ""),
			MaxConns: getEnvAsInt("DATABASE_MAX_CONNS", 0),
			Migrate:  getEnvAsBool("DATABASE_MIGRATE", false),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled: getEnvAsBool("RABBITMQ_ENABLED", false),
			URL:     getEnvAsString("RABBITMQ_URL", ""),
		},
		Auth: AuthConfig{
			AdminEmail:        getEnvAsString("ADMIN_EMAIL", ""),
			AdminFullName:     getEnvAsString("ADMIN_FULL_NAME", "Administrator"),
			AdminPasswordHash: getEnvAsString("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:         getEnvAsString("JWT_SECRET", ""),
			JWTTTL:            getEnvAsDuration("JWT_TTL", 12*time.Hour),
		},
		Pricing: PricingConfig{
			Currency: getEnvAsString("PRICE_CURRENCY", "UGX"),
			Locale:   getEnvAsString("PRICE_LOCALE", "en-UG"),
		},
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.JSON = getEnvAsBool("STDOUT_LOG_JSON", false)
	cfg.StdoutLogger.Color = getEnvAsBool("STDOUT_LOG_COLOR", true)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет, что для выбранного хранилища и включенных подсистем хватает настроек.
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Driver {
	case StoreDriverREST:
		if c.Store.URL == "" {
			errs = append(errs, errors.New("STORE_URL is required for STORE_DRIVER=rest"))
		}
		if c.Store.APIKey == "" {
			errs = append(errs, errors.New("STORE_API_KEY is required for STORE_DRIVER=rest"))
		}
	case StoreDriverPostgres:
		if c.Postgres.URL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for STORE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q (expected %q or %q)", c.Store.Driver, StoreDriverREST, StoreDriverPostgres))
	}

	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		errs = append(errs, errors.New("RABBITMQ_URL is required when RABBITMQ_ENABLED=true"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Auth.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}

	return errors.Join(errs...)
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsDuration понимает формат time.ParseDuration ("15s", "12h").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return d
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются.
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
