// Package config loads the catalog service configuration from environment
// variables.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      string `envconfig:"ENV" default:"dev"`
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"catalog"`
	Password        string        `envconfig:"DB_PASSWORD" default:"catalog"`
	Name            string        `envconfig:"DB_NAME" default:"catalog"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConnections  int           `envconfig:"DB_MAX_CONNECTIONS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"5m"`
}

// StorageConfig selects and configures the media resource backend.
// Driver is one of "local", "s3" or "minio".
type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"local"`
	Local  LocalStorageConfig
	S3     S3Config
	Minio  MinioConfig
}

type LocalStorageConfig struct {
	BasePath string `envconfig:"STORAGE_LOCAL_PATH" default:"/var/lib/catalog/media"`
}

type S3Config struct {
	Bucket string `envconfig:"STORAGE_S3_BUCKET" default:"catalog-media"`
	Region string `envconfig:"STORAGE_S3_REGION" default:"us-east-1"`
}

type MinioConfig struct {
	Endpoint  string `envconfig:"STORAGE_MINIO_ENDPOINT" default:"localhost:9000"`
	AccessKey string `envconfig:"STORAGE_MINIO_ACCESS_KEY" default:"minioadmin"`
	SecretKey string `envconfig:"STORAGE_MINIO_SECRET_KEY" default:"minioadmin"`
	Bucket    string `envconfig:"STORAGE_MINIO_BUCKET" default:"catalog-media"`
	UseSSL    bool   `envconfig:"STORAGE_MINIO_USE_SSL" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
