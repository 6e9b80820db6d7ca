package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "20240115b.data")
	touch(t, dir, "20240102.data")
	touch(t, dir, "20240115a.data")
	touch(t, dir, "notas.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "20240101.data"), 0o755))

	files, avisos, err := Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, avisos)

	require.Len(t, files, 3)
	assert.Equal(t, "20240102.data", files[0].Name)
	assert.Equal(t, "20240115a.data", files[1].Name)
	assert.Equal(t, "20240115b.data", files[2].Name)

	assert.Equal(t, filepath.Join(dir, "20240102.data"), files[0].Path)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), files[0].Fecha)
}

func TestScan_NombreSinFecha(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "20240102.data")
	touch(t, dir, "borrador.data")
	touch(t, dir, "2024010x.data")

	files, avisos, err := Scan(dir)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "20240102.data", files[0].Name)

	require.Len(t, avisos, 2)
	nombres := []string{avisos[0].Texto, avisos[1].Texto}
	assert.Contains(t, nombres, "borrador.data")
	assert.Contains(t, nombres, "2024010x.data")
}

func TestScan_DirectorioInexistente(t *testing.T) {
	files, avisos, err := Scan(filepath.Join(t.TempDir(), "no-existe"))
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Empty(t, avisos)
}
