package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg := InitConfig("")

	assert.Equal(t, "ridemate", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 50.0, cfg.Pricing.BaseFare)
	assert.Equal(t, 20.0, cfg.Pricing.PerKmRate)
	assert.Equal(t, 10.0, cfg.Match.MaxRadiusKm)
	assert.Equal(t, 60, cfg.JWT.Expiration)
}

func TestInitConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.env")

	content := `APP_NAME=ridemate-test
SERVER_PORT=9090
MATCH_MAX_RADIUS_KM=5.0
JWT_SECRET=test-secret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg := InitConfig(path)

	assert.Equal(t, "ridemate-test", cfg.App.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.Match.MaxRadiusKm)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
}

func TestInitConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=9090\n"), 0600))

	t.Setenv("SERVER_PORT", "7070")

	cfg := InitConfig(path)
	assert.Equal(t, 7070, cfg.Server.Port)
}
