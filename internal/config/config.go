package config

import (
	"fmt"
	"net/url"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full server configuration, read from the environment.
// Defaults match the service's original deployment values.
type Config struct {
	Port           string `env:"PORT" env-default:"8080"`
	Environment    string `env:"ENVIRONMENT" env-default:"development"`
	AdminAPIKey    string `env:"ADMIN_API_KEY" env-default:""`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" env-default:"33554432"`

	// DatabaseType selects the metadata repository: "postgres" or "memory"
	DatabaseType string `env:"DATABASE_TYPE" env-default:"postgres"`
	// StorageBackend selects the object store: "s3" or "memory"
	StorageBackend string `env:"STORAGE_BACKEND" env-default:"s3"`

	DB      DBConfig
	S3      S3Config
	Tracing TracingConfig
}

// DBConfig holds the relational store connection settings
type DBConfig struct {
	Endpoint string `env:"DB_ENDPOINT" env-default:"localhost"`
	Port     uint16 `env:"DB_PORT" env-default:"5432"`
	Username string `env:"DB_USERNAME" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:""`
	Name     string `env:"DB_NAME" env-default:"postgres"`
	// AuthMode is "static" (password from env) or "rds-iam" (auth token
	// fetched per connection attempt)
	AuthMode string `env:"DB_AUTH" env-default:"static"`
}

// S3Config holds the object store settings
type S3Config struct {
	Region          string `env:"AWS_REGION" env-default:"eu-west-1"`
	Bucket          string `env:"AWS_S3_BUCKET_NAME" env-default:"product-uploads"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	Endpoint        string `env:"AWS_S3_ENDPOINT" env-default:""`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
}

// TracingConfig holds the trace exporter settings
type TracingConfig struct {
	Enabled     bool   `env:"TRACING_ENABLED" env-default:"true"`
	Endpoint    string `env:"OTLP_ENDPOINT" env-default:"http://localhost:4318"`
	ServiceName string `env:"SERVICE_NAME" env-default:"product"`
}

// Load reads configuration from the process environment
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the selector fields
func (c *Config) Validate() error {
	if c.DatabaseType != "postgres" && c.DatabaseType != "memory" {
		return fmt.Errorf("DATABASE_TYPE must be 'postgres' or 'memory', got %q", c.DatabaseType)
	}
	if c.StorageBackend != "s3" && c.StorageBackend != "memory" {
		return fmt.Errorf("STORAGE_BACKEND must be 's3' or 'memory', got %q", c.StorageBackend)
	}
	if c.DB.AuthMode != "static" && c.DB.AuthMode != "rds-iam" {
		return fmt.Errorf("DB_AUTH must be 'static' or 'rds-iam', got %q", c.DB.AuthMode)
	}
	return nil
}

// URL builds the connection string for the relational store. The
// password is left empty; the credential provider fills it in per
// connection attempt.
func (c DBConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.User(c.Username),
		Host:   fmt.Sprintf("%s:%d", c.Endpoint, c.Port),
		Path:   c.Name,
	}
	return u.String()
}

// Addr returns host:port, the form the RDS token builder expects
func (c DBConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Endpoint, c.Port)
}
