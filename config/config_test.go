package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir chạy test trong thư mục tạm không có config/env để chỉ đọc biến môi trường
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestNewConfig_Defaults(t *testing.T) {
	inTempDir(t)
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DBNAME", "rk_dail_test")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "local", cfg.MediaBackend)
	assert.Equal(t, 50, cfg.BodyLimitMB)
	assert.True(t, cfg.RateLimit_Enabled)
}

func TestNewConfig_RequiresDatabase(t *testing.T) {
	inTempDir(t)
	t.Setenv("MONGODB_CONNECTION_URI", "")
	t.Setenv("MONGODB_DBNAME", "")
	os.Unsetenv("MONGODB_CONNECTION_URI")
	os.Unsetenv("MONGODB_DBNAME")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_S3NeedsBucket(t *testing.T) {
	inTempDir(t)
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DBNAME", "rk_dail_test")
	t.Setenv("MEDIA_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "")

	_, err := NewConfig()
	assert.ErrorContains(t, err, "S3_BUCKET")

	t.Setenv("MEDIA_BACKEND", "ftp")
	_, err = NewConfig()
	assert.ErrorContains(t, err, "MEDIA_BACKEND")
}

func TestNewConfig_ReadsEnvFile(t *testing.T) {
	dir := inTempDir(t)
	envDir := filepath.Join(dir, "config", "env")
	require.NoError(t, os.MkdirAll(envDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(envDir, "test.env"),
		[]byte("MONGODB_CONNECTION_URI=mongodb://db:27017\nMONGODB_DBNAME=from_file\nADDRESS=:9090\n"), 0o644))

	t.Setenv("GO_ENV", "test")
	// Biến môi trường của process luôn thắng giá trị trong file
	t.Setenv("ADDRESS", ":7070")
	for _, key := range []string{"MONGODB_CONNECTION_URI", "MONGODB_DBNAME"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.MongoDB_DBName)
	assert.Equal(t, ":7070", cfg.Address)
}
