package locator

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("key = \"value\"\n"), 0o600))
}

func deepDir(t *testing.T, root string, depth int) string {
	t.Helper()

	dir := root
	for i := range depth {
		dir = filepath.Join(dir, "level"+strconv.Itoa(i))
	}

	require.NoError(t, os.MkdirAll(dir, 0o750))

	return dir
}

func TestFind_AtVariousDepths(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{0, 1, 2, 5} {
		t.Run("depth "+strconv.Itoa(depth), func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			configPath := filepath.Join(root, "app.toml")
			writeFile(t, configPath)

			start := deepDir(t, root, depth)

			found, err := Find("app.toml", start)
			require.NoError(t, err)
			assert.Equal(t, configPath, found)
		})
	}
}

func TestFind_ClosestMatchWins(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.toml"))

	start := deepDir(t, root, 3)
	closer := filepath.Join(filepath.Dir(start), "app.toml")
	writeFile(t, closer)

	found, err := Find("app.toml", start)
	require.NoError(t, err)
	assert.Equal(t, closer, found)
}

func TestFind_NestedName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configPath := filepath.Join(root, "conf", "app.toml")
	writeFile(t, configPath)

	// A bare app.toml on the way up must not satisfy "conf/app.toml".
	start := deepDir(t, root, 2)
	writeFile(t, filepath.Join(filepath.Dir(start), "app.toml"))

	found, err := Find(filepath.Join("conf", "app.toml"), start)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestFind_NotFound(t *testing.T) {
	t.Parallel()

	start := deepDir(t, t.TempDir(), 3)

	found, err := Find("hjarta-missing-7f3a.toml", start)

	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, found)
	assert.Contains(t, err.Error(), "hjarta-missing-7f3a.toml")
}

func TestFind_SkipsDirectoryWithSameName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configPath := filepath.Join(root, "app.toml")
	writeFile(t, configPath)

	start := deepDir(t, root, 2)
	require.NoError(t, os.Mkdir(filepath.Join(start, "app.toml"), 0o750))

	found, err := Find("app.toml", start)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestFind_AbsoluteName(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "app.toml")
	writeFile(t, configPath)

	found, err := Find(configPath, "/")
	require.NoError(t, err)
	assert.Equal(t, configPath, found)

	_, err = Find(configPath+".missing", "/")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFind_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := Find("", t.TempDir())
	require.ErrorIs(t, err, ErrEmptyName)
}

//nolint:paralleltest // changes the process working directory.
func TestFindFromWorkingDir(t *testing.T) {
	root := t.TempDir()
	configPath := filepath.Join(root, "app.toml")
	writeFile(t, configPath)

	t.Chdir(deepDir(t, root, 2))

	found, err := FindFromWorkingDir("app.toml")
	require.NoError(t, err)

	// The temp dir may sit behind a symlink (macOS /var -> /private/var).
	expected, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}
