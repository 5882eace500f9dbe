package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgresql", cfg.Database.Provider)
	assert.Equal(t, "DATABASE_URL", cfg.Database.URLEnv)
}

func TestValidateProviders(t *testing.T) {
	for _, provider := range []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"} {
		cfg := &Config{Database: Database{Provider: provider}}
		assert.NoError(t, cfg.Validate(), provider)
	}

	cfg := &Config{Database: Database{Provider: "oracle"}}
	assert.Error(t, cfg.Validate())
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := &Config{Database: Database{URLEnv: "ELETROSEED_TEST_DB_URL"}}

	_, err := cfg.GetDatabaseURL()
	assert.Error(t, err)

	t.Setenv("ELETROSEED_TEST_DB_URL", "postgres://localhost/store")
	url, err := cfg.GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/store", url)
}
