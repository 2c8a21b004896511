package catalog

import (
	"fmt"

	"github.com/mwantia/webterm/config"
)

// NewSource creates the source selected by cfg.
func NewSource(cfg config.CatalogConfig) (Source, error) {
	switch cfg.Kind {
	case config.CatalogStatic, "":
		return NewStaticSource(cfg.Posts...), nil
	case config.CatalogSQLite:
		return NewSQLiteSource(cfg.DSN), nil
	case config.CatalogPostgres:
		return NewPostgresSource(cfg.DSN)
	case config.CatalogConsul:
		return NewConsulSource(&ConsulSourceConfig{
			Address: cfg.Address,
			Token:   cfg.Token,
			Prefix:  cfg.Prefix,
		})
	case config.CatalogS3:
		return NewS3Source(cfg.Endpoint, cfg.Bucket, cfg.Prefix, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Kind)
	}
}
