package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("CANONICAL_CSV_PATH", "data/catalog.csv")
	t.Setenv("LLM_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Catalog.Source)
	assert.Equal(t, "data/catalog.csv", cfg.Catalog.CSVPath)
	assert.Equal(t, 10, cfg.Search.DefaultLimit)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, 30, cfg.LLM.Timeout)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_LLMEnabledAndTrimmedBase(t *testing.T) {
	t.Setenv("CANONICAL_CSV_PATH", "catalog.csv")
	t.Setenv("LLM_API_KEY", "secret")
	t.Setenv("LLM_BASE_URL", "https://llm.example.com/v1/")
	t.Setenv("LLM_TIMEOUT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "https://llm.example.com/v1", cfg.LLM.APIBase)
	assert.Equal(t, 30, cfg.LLM.Timeout)
}

func TestLoad_CollectsInvalidNumberWarnings(t *testing.T) {
	t.Setenv("CANONICAL_CSV_PATH", "catalog.csv")
	t.Setenv("LLM_TIMEOUT", "soon")
	t.Setenv("LLM_TEMPERATURE", "warm")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.0, cfg.LLM.Temperature)
	assert.Equal(t, []string{
		"invalid float value for LLM_TEMPERATURE, using default 0",
		"invalid integer value for LLM_TIMEOUT, using default 30",
	}, cfg.Warnings)
}

func TestLoad_RejectsMissingCSVPath(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "csv")
	t.Setenv("CANONICAL_CSV_PATH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "xml")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetPostgreSQLDSN(t *testing.T) {
	cfg := &Config{Catalog: CatalogConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Database: "inmo", SSLMode: "disable",
	}}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=inmo sslmode=disable", cfg.GetPostgreSQLDSN())

	cfg.Catalog.DSN = "postgres://u:p@db/inmo"
	assert.Equal(t, "postgres://u:p@db/inmo", cfg.GetPostgreSQLDSN())
}
