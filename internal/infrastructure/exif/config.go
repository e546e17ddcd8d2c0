package exif

import (
	"msgboard/pkg/geolocation"
	"msgboard/pkg/logger"
)

type Config struct {
	Enabled bool `yaml:"enabled"`
}

// NewExtractor picks the extractor variant once at startup.
func NewExtractor(cfg Config) *geolocation.Extractor {
	if !cfg.Enabled {
		logger.Info("exif reading disabled, images will carry no geolocation")

		return geolocation.Unsupported()
	}

	return geolocation.NewExtractor(NewReader())
}
