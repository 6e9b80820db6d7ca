package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default("Panadería Sol")
	cfg.Ficheros.BalanceInicial = "apertura.txt"
	cfg.Git.AutoCommit = false

	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_Errores(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-existe.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("negocio: [no es un mapa"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestDefault(t *testing.T) {
	cfg := Default("Taller Ruiz")

	assert.Equal(t, "Taller Ruiz", cfg.Negocio.Nombre)
	assert.Equal(t, "cuentas.txt", cfg.Ficheros.Cuentas)
	assert.Equal(t, "diario", cfg.Ficheros.DirDiario)
	assert.False(t, cfg.Ficheros.PGC)
	assert.True(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Cuadra", cfg.Git.AuthorName)
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, FileName), Locate(dir))

	t.Setenv(EnvConfig, "/tmp/otra.yaml")
	assert.Equal(t, "/tmp/otra.yaml", Locate(dir))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "", Resolve("/libros", ""))
	assert.Equal(t, "/abs/cuentas.txt", Resolve("/libros", "/abs/cuentas.txt"))
	assert.Equal(t, filepath.Join("/libros", "diario"), Resolve("/libros", "diario"))
}
