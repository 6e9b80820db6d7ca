package cuadro

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuadra-dev/cuadra/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func setupCuadro(t *testing.T) *Cuadro {
	t.Helper()
	c := New()
	require.NoError(t, c.CrearCuenta("test", "0000", model.MasaActivoCorriente))
	require.NoError(t, c.CrearCuenta("test1", "0001", model.MasaPatrimonio))
	require.NoError(t, c.CrearCuenta("test2", "0002", model.MasaPasivoCorriente))
	return c
}

func TestCrearCuenta(t *testing.T) {
	c := New()
	require.NoError(t, c.CrearCuenta("Bancos", "572", model.MasaActivoCorriente))

	cuenta, ok := c.BuscarCuenta("572")
	require.True(t, ok)
	assert.Equal(t, "Bancos", cuenta.Nombre)
	assert.Equal(t, model.MasaActivoCorriente, cuenta.Masa)
	assert.True(t, cuenta.Saldo().IsZero())
}

func TestCrearCuenta_Duplicada(t *testing.T) {
	c := setupCuadro(t)

	err := c.CrearCuenta("Nueva cuenta", "0000", model.MasaActivoCorriente)
	require.ErrorIs(t, err, ErrCuentaDuplicada)
	assert.Contains(t, err.Error(), "0000 ~ test")
	assert.Len(t, c.Cuentas(), 3)
}

func TestBuscarCuenta(t *testing.T) {
	c := setupCuadro(t)

	cuenta, ok := c.BuscarCuenta("0000")
	require.True(t, ok)
	assert.Equal(t, "test", cuenta.Nombre)

	_, ok = c.BuscarCuenta("9999")
	assert.False(t, ok)
}

func TestPorMasa(t *testing.T) {
	c := setupCuadro(t)
	require.NoError(t, c.CrearCuenta("test3", "0003", model.MasaActivoCorriente))

	activos := c.PorMasa(model.MasaActivoCorriente)
	require.Len(t, activos, 2)
	assert.Equal(t, "0000", activos[0].Codigo)
	assert.Equal(t, "0003", activos[1].Codigo)

	assert.Empty(t, c.PorMasa(model.MasaIngreso))
}

func TestCargarPGC(t *testing.T) {
	c := New()

	perdidos, err := c.CargarPGC()
	require.NoError(t, err)

	// 261 rows in the standard table, 6 without a masa.
	assert.Len(t, c.Cuentas(), 255)
	assert.Len(t, perdidos, 6)

	capital, ok := c.BuscarCuenta("100")
	require.True(t, ok)
	assert.Equal(t, "Capital social", capital.Nombre)
	assert.Equal(t, model.MasaPatrimonio, capital.Masa)
}

func TestCargarPGC_CuadroNoVacio(t *testing.T) {
	c := setupCuadro(t)

	_, err := c.CargarPGC()
	require.ErrorIs(t, err, ErrCuadroNoVacio)
	assert.Len(t, c.Cuentas(), 3)
}
