package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"bird-service/internal/domain/birds"
	"bird-service/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestBirdsCommands_AgainstServer(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	out, err := run(t, "birds", "--server", ts.URL, "put", "--id", "b1", "--species", "Sparrow", "--size", "small")
	require.NoError(t, err)

	var rec birds.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, birds.Record{ID: "b1", Species: "Sparrow", Size: "small"}, rec)

	out, err = run(t, "birds", "--server", ts.URL, "get", "b1")
	require.NoError(t, err)
	assert.Contains(t, out, `"species": "Sparrow"`)

	out, err = run(t, "birds", "--server", ts.URL, "list")
	require.NoError(t, err)
	var recs []birds.Record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	assert.Len(t, recs, 1)

	_, err = run(t, "birds", "--server", ts.URL, "delete", "b1")
	require.NoError(t, err)

	_, err = run(t, "birds", "--server", ts.URL, "get", "b1")
	assert.ErrorIs(t, err, birds.ErrNotFound)
}

func TestBirdsGet_RequiresID(t *testing.T) {
	_, err := run(t, "birds", "get")
	assert.Error(t, err)
}

func TestMigrate_SQLite(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "birds.db"))

	out, err := run(t, "migrate", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "migrated sqlite"))
}

func TestMigrate_InvalidConfig(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := run(t, "migrate", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
