package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadfromFile(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")
	require.Equal(t, BackendLocal, cfg.Backend)
	require.Equal(t, "admin", cfg.Auth.AdminUsername)
	require.Equal(t, int64(3*1024*1024), cfg.Uploads.ImageMaxBytes)
}

func TestLoadMissingAddress(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")

	dir := t.TempDir()
	path := dir + "/config.yml"
	writeFile(t, path, "environment: \"prod\"\nstorage_backend: \"local\"\n")

	_, err := Load(path)
	require.Error(t, err)
}
