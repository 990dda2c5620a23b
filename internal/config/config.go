package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Logging LoggingConfig
	Store   StoreConfig
	AWS     AWSConfig
	Billing BillingConfig
	Jobs    JobsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// StoreConfig selects the document store backing every collection.
// Driver is one of "dynamodb", "sqlite" or "postgres".
type StoreConfig struct {
	Driver      string
	TablePrefix string
	DSN         string
	Timeout     int
}

type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type BillingConfig struct {
	DefaultCreditDays int
	NOKAlertThreshold string
	AcceptTermsForPO  bool
	// TermsWaivePO lets clients with signed terms open tickets without a PO.
	TermsWaivePO bool
}

type JobsConfig struct {
	StatusRefreshEnabled bool
	StatusRefreshCron    string
}

const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// NOKThreshold parses the configured alert threshold, falling back to 3%.
func (b *BillingConfig) NOKThreshold() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(b.NOKAlertThreshold))
	if err != nil || d.IsNegative() {
		return decimal.RequireFromString("0.03")
	}
	return d
}

// TimeoutDuration returns the per-call store timeout as duration
func (s *StoreConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// Load loads configuration from defaults, an optional config.json and the environment.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Plain AWS variable names keep working for local DynamoDB setups.
	_ = v.BindEnv("aws.region", "AWS_REGION")
	_ = v.BindEnv("aws.accessKeyID", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("aws.secretAccessKey", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("aws.endpoint", "DYNAMODB_ENDPOINT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverDynamoDB, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	if c.Store.Driver != DriverDynamoDB && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required for driver %q", c.Store.Driver)
	}
	switch c.Billing.DefaultCreditDays {
	case 15, 30, 45, 60, 90:
	default:
		return fmt.Errorf("billing.defaultCreditDays must be 15, 30, 45, 60 or 90, got %d", c.Billing.DefaultCreditDays)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "eisen-qms")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("store.driver", DriverDynamoDB)
	v.SetDefault("store.tablePrefix", "")
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.timeout", 10)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.accessKeyID", "local")
	v.SetDefault("aws.secretAccessKey", "local")

	v.SetDefault("billing.defaultCreditDays", 30)
	v.SetDefault("billing.nokAlertThreshold", "0.03")
	v.SetDefault("billing.acceptTermsForPO", true)
	v.SetDefault("billing.termsWaivePO", true)

	v.SetDefault("jobs.statusRefreshEnabled", true)
	v.SetDefault("jobs.statusRefreshCron", "0 15 6 * * *")
}
