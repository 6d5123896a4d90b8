package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/emodel/errors"
)

// TestDefault tests the default configuration.
func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, DriverHTTP, c.EntityCore.Driver)
	require.NotNil(t, c.EntityCore.Connection)
	assert.Equal(t, "localhost", c.EntityCore.Connection.Host)
	assert.Equal(t, 8000, c.EntityCore.Connection.Port)
	require.NotNil(t, c.EntityCore.Connection.MaxTimeout)
	assert.Equal(t, 30*time.Second, *c.EntityCore.Connection.MaxTimeout)
	require.NotNil(t, c.Data)
	assert.Empty(t, c.Data.Dir)
}

// TestEnvironment tests overriding the config values with the environment variables.
func TestEnvironment(t *testing.T) {
	t.Setenv("EMODEL_ENTITYCORE_DRIVER", "sqlite")
	t.Setenv("EMODEL_ENTITYCORE_DSN", "path=/tmp/emodel.db max_timeout=1s")
	t.Setenv("EMODEL_LOG_LEVEL", "debug")

	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, c.EntityCore.Driver)
	assert.Equal(t, "/tmp/emodel.db", c.EntityCore.Connection.DataSource())
	assert.Equal(t, time.Second, *c.EntityCore.Connection.MaxTimeout)
	assert.Equal(t, "debug", c.Log.Level)
}

// TestReadConfigFile tests reading the config from the yaml file.
func TestReadConfigFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(dir, "valid.yaml")
		content := `
log:
  level: warning
entitycore:
  driver: http
  connection:
    raw_url: https://example.org/api/entitycore
    max_timeout: 5s
data:
  dir: /srv/dendritic
`
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))

		c, err := ReadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "warning", c.Log.Level)
		assert.Equal(t, "https://example.org/api/entitycore", c.EntityCore.Connection.RawURL)
		assert.Equal(t, 5*time.Second, *c.EntityCore.Connection.MaxTimeout)
		assert.Equal(t, "/srv/dendritic", c.Data.Dir)
	})

	t.Run("InvalidDriver", func(t *testing.T) {
		path := filepath.Join(dir, "driver.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("entitycore:\n  driver: postgres\n"), 0644))

		_, err := ReadConfigFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassConfigInvalidValue))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		path := filepath.Join(dir, "level.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("log:\n  level: verbose\n"), 0644))

		_, err := ReadConfigFile(path)
		require.Error(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ReadConfigFile(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, ClassConfigRead))
	})
}
