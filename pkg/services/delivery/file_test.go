package delivery

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/fleet-report/pkg/services/report/assemble"
)

func TestWriteFiles_Combined(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteFiles(dir, &assemble.Result{Combined: "<html>combined</html>"})
	require.NoError(t, err)

	require.Equal(t, []string{filepath.Join(dir, "report.html")}, paths)
	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "<html>combined</html>", string(data))
}

func TestWriteFiles_PerSubject(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteFiles(dir, &assemble.Result{
		PerSubject: map[string]string{
			"bigip-fra-01": "<html>one</html>",
			"bigip-fra-02": "<html>two</html>",
		},
	})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	data, err := os.ReadFile(filepath.Join(dir, "bigip-fra-01.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>one</html>", string(data))
}

func TestWriteFiles_EmptyResult(t *testing.T) {
	paths, err := WriteFiles(t.TempDir(), &assemble.Result{})
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestZip_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bigip-fra-01.html")
	require.NoError(t, os.WriteFile(file, []byte("<html>one</html>"), 0o644))

	zipPath := filepath.Join(dir, "reports.zip")
	require.NoError(t, Zip(zipPath, []string{file}))

	r, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.File, 1)
	assert.Equal(t, "bigip-fra-01.html", r.File[0].Name)

	rc, err := r.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<html>one</html>", string(data))
}

func TestZip_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	err := Zip(filepath.Join(dir, "reports.zip"), []string{filepath.Join(dir, "nope.html")})
	assert.Error(t, err)
}
