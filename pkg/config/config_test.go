package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "memory", cfg.Entity.Type)
	assert.Equal(t, "memory", cfg.Content.Type)
	assert.True(t, cfg.Adapters.REST.Enabled)
	assert.Equal(t, 8080, cfg.Adapters.REST.Port)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
entity:
  type: badger
  badger:
    db_path: /var/lib/dittodrive
adapters:
  rest:
    enabled: true
    port: 9090
seed:
  path: /etc/dittodrive/seed.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level, "Level should be normalized to uppercase")
	assert.Equal(t, "badger", cfg.Entity.Type)
	assert.Equal(t, "/var/lib/dittodrive", cfg.Entity.Badger["db_path"])
	assert.Equal(t, 9090, cfg.Adapters.REST.Port)
	assert.Equal(t, "/etc/dittodrive/seed.yaml", cfg.Seed.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DITTODRIVE_LOGGING_LEVEL", "ERROR")

	cfg, err := Load(writeConfigFile(t, "logging:\n  level: info\n"))
	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.Logging.Level)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "VERBOSE"

	assert.Error(t, Validate(cfg))
}

func TestValidate_NoAdapterEnabled(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Adapters.REST.Enabled = false

	assert.Error(t, Validate(cfg))
}

func TestValidate_BadgerWithoutPath(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Entity.Type = "badger"

	assert.Error(t, Validate(cfg))

	cfg.Entity.Badger["in_memory"] = true
	assert.NoError(t, Validate(cfg))
}

func TestValidate_S3WithoutBucket(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Content.Type = "s3"
	cfg.Content.S3["region"] = "eu-west-1"

	assert.Error(t, Validate(cfg))

	cfg.Content.S3["bucket"] = "dittodrive-content"
	assert.NoError(t, Validate(cfg))
}

func TestCreateEntityStore_Memory(t *testing.T) {
	store, err := CreateEntityStore(context.Background(), &EntityConfig{Type: "memory"})
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.NoError(t, store.Healthcheck(context.Background()))
	assert.NoError(t, store.Close())
}

func TestCreateEntityStore_Badger(t *testing.T) {
	store, err := CreateEntityStore(context.Background(), &EntityConfig{
		Type:   "badger",
		Badger: map[string]any{"db_path": t.TempDir()},
	})
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.NoError(t, store.Healthcheck(context.Background()))
	assert.NoError(t, store.Close())
}

func TestCreateEntityStore_UnknownType(t *testing.T) {
	_, err := CreateEntityStore(context.Background(), &EntityConfig{Type: "postgres"})
	assert.Error(t, err)
}

func TestCreateContentStore_Memory(t *testing.T) {
	store, err := CreateContentStore(context.Background(), &ContentConfig{Type: "memory"})
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.NoError(t, store.Close())
}

func TestCreateContentStore_S3MissingBucket(t *testing.T) {
	_, err := CreateContentStore(context.Background(), &ContentConfig{
		Type: "s3",
		S3:   map[string]any{"region": "eu-west-1"},
	})
	assert.Error(t, err)
}
