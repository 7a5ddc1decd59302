package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestReadImage(t *testing.T) {
	path := writeFile(t, "front.jpg", []byte("jpg-bytes"))

	name, contentType, data, err := ReadImage(path)
	require.NoError(t, err)
	require.Equal(t, "front.jpg", name)
	require.Equal(t, "image/jpeg", contentType)
	require.Equal(t, []byte("jpg-bytes"), data)
}

func TestReadImage_UppercaseExtension(t *testing.T) {
	path := writeFile(t, "side.PNG", []byte("png-bytes"))

	name, contentType, _, err := ReadImage(path)
	require.NoError(t, err)
	require.Equal(t, "side.PNG", name)
	require.Equal(t, "image/png", contentType)
}

func TestReadImage_RejectsNonImage(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("text"))

	_, _, _, err := ReadImage(path)
	require.ErrorIs(t, err, ErrUnsupportedExt)
}

func TestReadImage_MissingFile(t *testing.T) {
	_, _, _, err := ReadImage(filepath.Join(t.TempDir(), "missing.jpg"))
	require.Error(t, err)
}
