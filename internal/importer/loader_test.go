package importer

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuadra-dev/cuadra/internal/cuadro"
	"github.com/cuadra-dev/cuadra/internal/model"
	"github.com/cuadra-dev/cuadra/internal/oplog"
)

func quietLoader() *Loader {
	return NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func escribir(t *testing.T, path, contenido string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))
}

func TestLoader_Cargar(t *testing.T) {
	root := t.TempDir()

	cuentas := filepath.Join(root, "cuentas.txt")
	escribir(t, cuentas, `# plan de cuentas
100 Capital social
572 Bancos
600 Compras de mercaderías
700 Ventas de mercaderías
`)

	balance := filepath.Join(root, "balance.txt")
	escribir(t, balance, `ACTIVO CORRIENTE
572 1000.00

PATRIMONIO NETO
100 1000.00
`)

	diario := filepath.Join(root, "diario")
	require.NoError(t, os.Mkdir(diario, 0o755))
	escribir(t, filepath.Join(diario, "20240105.data"), `Compra de material
DEBE
600 250.00
HABER
572 250.00
///
`)
	escribir(t, filepath.Join(diario, "20240110.data"), `Venta al contado
DEBE
572 400.00
HABER
700 400.00
///
`)

	cd := cuadro.New()
	res, err := quietLoader().Cargar(cd, Opciones{
		FicheroCuentas: cuentas,
		BalanceInicial: balance,
		FechaApertura:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DirDiario:      diario,
		LogRoot:        root,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, res.CuentasCreadas)
	assert.Equal(t, 3, res.AsientosCreados)
	assert.Equal(t, 2, res.FicherosLeidos)
	assert.Equal(t, 0, res.Omitidos)

	asientos := cd.Asientos()
	require.Len(t, asientos, 3)
	assert.Equal(t, "0001", asientos[0].Codigo)
	assert.Equal(t, "Asiento de apertura", asientos[0].Concepto)
	assert.Equal(t, "Compra de material", asientos[1].Concepto)
	assert.Equal(t, "Venta al contado", asientos[2].Concepto)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), asientos[1].Fecha)

	bancos, err := cd.MayorizarCuenta("572")
	require.NoError(t, err)
	assert.True(t, bancos.Cuenta.Saldo().Equal(dec("1150.00")))

	entries, err := oplog.Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "cargar", entries[0].Accion)
	assert.Equal(t, "20240105.data", entries[0].Fichero)
	assert.Equal(t, "asientos=1", entries[0].Detalle)
	assert.Equal(t, "0002", entries[0].Asientos)
	assert.Equal(t, "20240110.data", entries[1].Fichero)
	assert.Equal(t, "0003", entries[1].Asientos)
}

func TestLoader_Cargar_PGC(t *testing.T) {
	cd := cuadro.New()
	res, err := quietLoader().Cargar(cd, Opciones{CargarPGC: true})
	require.NoError(t, err)

	assert.Equal(t, 255, res.CuentasCreadas)
	assert.Equal(t, 6, res.Omitidos)
	assert.Len(t, cd.Cuentas(), 255)
}

func TestLoader_Cargar_BalanceDescuadrado(t *testing.T) {
	root := t.TempDir()
	balance := filepath.Join(root, "balance.txt")
	escribir(t, balance, `ACTIVO CORRIENTE
572 1000.00

PATRIMONIO NETO
100 900.00
`)

	cd := cuadro.New()
	require.NoError(t, cd.CrearCuenta("Capital social", "100", model.MasaPatrimonio))
	require.NoError(t, cd.CrearCuenta("Bancos", "572", model.MasaActivoCorriente))

	_, err := quietLoader().Cargar(cd, Opciones{BalanceInicial: balance})
	require.ErrorIs(t, err, cuadro.ErrAsientoDesequilibrado)
	assert.Empty(t, cd.Asientos())
}

func TestLoader_Cargar_CuentaSinClasificar(t *testing.T) {
	root := t.TempDir()
	cuentas := filepath.Join(root, "cuentas.txt")
	escribir(t, cuentas, `572 Bancos
551 Cuenta corriente con socios
`)

	cd := cuadro.New()
	res, err := quietLoader().Cargar(cd, Opciones{FicheroCuentas: cuentas})
	require.NoError(t, err)

	assert.Equal(t, 1, res.CuentasCreadas)
	assert.Equal(t, 1, res.Omitidos)
	_, ok := cd.BuscarCuenta("551")
	assert.False(t, ok)
}
