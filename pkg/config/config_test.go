package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/pkg/config"
)

// chdirTemp evita que un .env del repositorio se filtre en los tests.
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventario-web", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "0.0.0.0:5173", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout())
	assert.Equal(t, "inventory_stats", cfg.API.DashboardVariant)
	assert.Equal(t, "./docs/swagger.json", cfg.Docs.File)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("API_BASE_URL", "http://api.interna:8000/v1")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("DASHBOARD_VARIANT", "purchases")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "http://api.interna:8000/v1", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout())
	assert.Equal(t, "purchases", cfg.API.DashboardVariant)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_PORT", "abc")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_TimeoutNegativo(t *testing.T) {
	chdirTemp(t)
	t.Setenv("API_TIMEOUT_SECONDS", "-1")

	_, err := config.Load()
	assert.Error(t, err)
}
