package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "data/birds.db", cfg.Storage.SQLitePath)
	assert.Equal(t, DefaultMongoDatabase, cfg.Storage.MongoDatabase)
	assert.Equal(t, DefaultMongoCollection, cfg.Storage.MongoCollection)
	assert.Equal(t, LogConfig{Level: "info", Format: "text", App: "bird-service"}, cfg.Log)
}

func TestFromEnv_InfersDriver(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{"DB_DSN": "postgres://localhost/birds"}))
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)

	cfg, err = FromEnv(envMap(map[string]string{"MONGO_URI": "mongodb://localhost"}))
	require.NoError(t, err)
	assert.Equal(t, DriverMongo, cfg.Storage.Driver)
}

func TestFromEnv_ExplicitDriverWins(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"STORAGE_DRIVER": "SQLite",
		"DB_DSN":         "postgres://localhost/birds",
		"SQLITE_PATH":    "/tmp/x.db",
	}))
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.SQLitePath)
}

func TestFromEnv_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":        {"STORAGE_DRIVER": "cassandra"},
		"postgres without dsn":  {"STORAGE_DRIVER": "postgres"},
		"mongo without uri":     {"STORAGE_DRIVER": "mongo"},
		"bad cache ttl":         {"CACHE_TTL": "soon"},
		"negative read timeout": {"READ_TIMEOUT": "-1s"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envMap(env))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_ReadsDotEnv_EnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CACHE_TTL=30s\nAPP_NAME=from-file\n"), 0o600))

	t.Setenv("APP_NAME", "from-env")
	// t.Setenv registra la restauración; después se borra para que godotenv la pueda cargar.
	t.Setenv("CACHE_TTL", "")
	require.NoError(t, os.Unsetenv("CACHE_TTL"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Log.App)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NoError(t, err)
}
