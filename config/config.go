package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"msgboard/internal/application/usecase"
	"msgboard/internal/domain/model"
	"msgboard/internal/infrastructure/broker"
	"msgboard/internal/infrastructure/database"
	"msgboard/internal/infrastructure/exif"
	"msgboard/internal/infrastructure/memcache"
	"msgboard/internal/infrastructure/minio"
	"msgboard/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	HTTP            HTTPConfig             `yaml:"http"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIOGetter     minio.GetterConfig     `yaml:"minio_getter"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Prewarm         usecase.PrewarmConfig  `yaml:"prewarm"`
	Memcache        memcache.Config        `yaml:"memcache"`
	Exif            exif.Config            `yaml:"exif"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	// Address is where the HTTP server listens.
	Address string `yaml:"address"`
	// PublicAddress roots the image links handed out to clients.
	PublicAddress string `yaml:"public_address"`
}

type HTTPConfig struct {
	AllowedSizes []string `yaml:"allowed_sizes"`
	BodyLimit    string   `yaml:"body_limit"`
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
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return errors.New("default.address is empty")
	}

	if c.MinIOUploader.Bucket == "" {
		return errors.New("minio_uploader.bucket is empty")
	}

	timeouts := map[string]int64{
		"db_config.connection_timeout_in_ms": c.DBConfig.ConnectionTimeout,
		"db_config.query_timeout_in_ms":      c.DBConfig.QueryTimeout,
		"minio_uploader.timeout_in_ms":       c.MinIOUploader.Timeout,
		"minio_getter.timeout_in_ms":         c.MinIOGetter.Timeout,
		"minio_remover.timeout_in_ms":        c.MinIORemover.Timeout,
		"publisher_config.timeout_in_ms":     int64(c.PublisherConfig.Timeout),
	}
	for name, timeout := range timeouts {
		if timeout <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	sizes := make([]string, 0, len(c.HTTP.AllowedSizes)+len(c.Prewarm.FitSizes)+len(c.Prewarm.NonFitSizes))
	sizes = append(sizes, c.HTTP.AllowedSizes...)
	sizes = append(sizes, c.Prewarm.FitSizes...)
	sizes = append(sizes, c.Prewarm.NonFitSizes...)
	for _, key := range sizes {
		if _, err := model.ParseSize(key); err != nil {
			return err
		}
	}

	return nil
}
