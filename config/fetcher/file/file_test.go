package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-config/config/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
name = "test-app"
version = "1.0"
`)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	err := os.WriteFile(configPath, content, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFetcher("config.toml", tmpDir)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, configPath, fetcher.Path())
}

func TestFetcher_LocatesInParent(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`a = 1`), 0o600))

	start := filepath.Join(tmpDir, "service", "cmd")
	require.NoError(t, os.MkdirAll(start, 0o750))

	fetcher, err := NewFetcher("config.toml", start)()
	require.NoError(t, err)
	assert.Equal(t, configPath, fetcher.Path())
}

func TestFetcher_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("hjarta-absent-91c2.toml", t.TempDir())()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, locator.ErrNotFound)
	assert.Contains(t, err.Error(), "hjarta-absent-91c2.toml")
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	err := os.WriteFile(filepath.Join(tmpDir, "empty.toml"), []byte{}, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFetcher("empty.toml", tmpDir)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	originalContent := []byte(`version = "1.0"`)
	modifiedContent := []byte(`version = "2.0"`)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	err := os.WriteFile(configPath, originalContent, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFetcher("config.toml", tmpDir)()
	require.NoError(t, err)

	err = os.WriteFile(configPath, modifiedContent, 0o600)
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, originalContent, data, "Fetch should return cached data, not current file content")
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	content := []byte(`original = "value"`)

	tmpDir := t.TempDir()

	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFetcher("config.toml", tmpDir)()
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	data1[0] = 'X'

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, data2, "Fetch should return unmodified cached data")
}
