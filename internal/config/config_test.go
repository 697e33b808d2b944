package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  env: production
  port: 9000
  shutdown_seconds: 5
mongodb:
  uri: mongodb://db:27017
  database: videotube
aws:
  region: eu-west-1
  bucket: media
jwt:
  secret: s3cret
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "videotube", cfg.Mongo.Database)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
mongodb:
  uri: mongodb://localhost:27017
  database: videotube
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
