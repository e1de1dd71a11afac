package repository

import (
	"fmt"

	"inmo-assistant/internal/config"
)

// NewSource builds the catalog source selected by configuration.
// Callers should Close the source if it implements io.Closer.
func NewSource(cfg *config.Config) (Source, error) {
	switch cfg.Catalog.Source {
	case "csv":
		return NewCSVSource(cfg.Catalog.CSVPath), nil
	case "postgres":
		return NewPostgresSource(
			cfg.GetPostgreSQLDSN(),
			cfg.Catalog.Table,
			cfg.Catalog.MaxConnections,
			cfg.Catalog.MaxIdleConnections,
		)
	}
	return nil, fmt.Errorf("unsupported catalog source %q", cfg.Catalog.Source)
}
