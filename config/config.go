package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"folio/internal/application/usecase"
	"folio/internal/infrastructure/database"
	"folio/internal/infrastructure/localfs"
	"folio/internal/infrastructure/minio"
	"folio/internal/infrastructure/session"
	"folio/internal/presentation/middleware"
	"folio/pkg/logger"
)

// Storage backend selectors.
const (
	BackendLocal = "local"
	BackendMinIO = "minio"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address      string                     `yaml:"address"`
	BodyLimit    string                     `yaml:"body_limit"`
	SecureCookie bool                       `yaml:"secure_cookie"`
	RateLimit    middleware.RateLimitConfig `yaml:"rate_limit"`
}

// Config represents the configs used by services on system.
type Config struct {
	Environment string                  `yaml:"environment"`
	Server      ServerConfig            `yaml:"server"`
	Backend     string                  `yaml:"storage_backend"`
	MinIO       minio.Config            `yaml:"minio"`
	LocalFS     localfs.Config          `yaml:"local_storage"`
	DBConfig    database.Config         `yaml:"db_config"`
	Session     session.Config          `yaml:"session"`
	Uploads     usecase.ValidatorConfig `yaml:"uploads"`
	Logger      logger.Config           `yaml:"logger"`

	Auth usecase.AuthConfig `yaml:"-"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIO.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIO.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Session.URI = os.Getenv("REDIS_URI")
	config.Auth.AdminUsername = os.Getenv("ADMIN_USERNAME")
	config.Auth.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	config.Auth.JWTSecret = os.Getenv("JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// IsDev reports whether detailed error messages may reach clients.
func (c *Config) IsDev() bool {
	return c.Environment != "prod"
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Server.Address == "" {
		return errors.New("server.address is not set")
	}

	switch c.Backend {
	case BackendLocal:
		if c.LocalFS.Root == "" {
			return errors.New("local_storage.root is not set")
		}
	case BackendMinIO:
		if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
			return errors.New("minio.endpoint and minio.bucket are not set")
		}
	default:
		return errors.New("storage_backend must be local or minio")
	}

	if c.DBConfig.Path == "" {
		return errors.New("db_config.path is not set")
	}

	return nil
}
