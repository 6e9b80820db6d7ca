package cuadro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuadra-dev/cuadra/internal/model"
)

func postear(t *testing.T, c *Cuadro, concepto string, debe, haber []model.Apunte) {
	t.Helper()
	_, err := c.CrearAsiento(concepto, fecha(2024, 3, 1), debe, haber, "")
	require.NoError(t, err)
}

func TestMayorizarCuenta(t *testing.T) {
	c := setupCuadro(t)
	postear(t, c, "Apertura", apuntes("0000", "300.00"), apuntes("0001", "300.00"))
	postear(t, c, "Pago", apuntes("0002", "20.00"), apuntes("0000", "20.00"))
	postear(t, c, "Cobro", apuntes("0000", "45.50"), apuntes("0002", "45.50"))

	mayor, err := c.MayorizarCuenta("0000")
	require.NoError(t, err)

	// Movements in journal order, split by side.
	require.Len(t, mayor.Debe, 2)
	assert.True(t, mayor.Debe[0].Importe.Equal(dec("300.00")))
	assert.True(t, mayor.Debe[1].Importe.Equal(dec("45.50")))
	require.Len(t, mayor.Haber, 1)
	assert.True(t, mayor.Haber[0].Importe.Equal(dec("20.00")))

	assert.True(t, mayor.Cuenta.SaldoDeudor.Equal(dec("345.50")))
	assert.True(t, mayor.Cuenta.SaldoAcreedor.Equal(dec("20.00")))
	assert.True(t, mayor.Cuenta.Saldo().Equal(dec("325.50")))
}

func TestMayorizarCuenta_ReiniciaSaldos(t *testing.T) {
	c := setupCuadro(t)
	postear(t, c, "Apertura", apuntes("0000", "100.00"), apuntes("0001", "100.00"))

	// Replaying twice must not double the totals.
	_, err := c.MayorizarCuenta("0000")
	require.NoError(t, err)
	mayor, err := c.MayorizarCuenta("0000")
	require.NoError(t, err)

	assert.True(t, mayor.Cuenta.SaldoDeudor.Equal(dec("100.00")))
	assert.True(t, mayor.Cuenta.Saldo().Equal(dec("100.00")))
}

func TestMayorizarCuenta_SinMovimientos(t *testing.T) {
	c := setupCuadro(t)

	mayor, err := c.MayorizarCuenta("0002")
	require.NoError(t, err)
	assert.Empty(t, mayor.Debe)
	assert.Empty(t, mayor.Haber)
	assert.True(t, mayor.Cuenta.Saldo().IsZero())
}

func TestMayorizarCuenta_Inexistente(t *testing.T) {
	c := setupCuadro(t)

	_, err := c.MayorizarCuenta("9999")
	require.ErrorIs(t, err, ErrCuentaInexistente)
}

func TestMayorizarCuenta_ReflejaReemplazo(t *testing.T) {
	c := setupCuadro(t)
	codigo, err := c.CrearAsiento("Original", fecha(2024, 3, 1),
		apuntes("0000", "10.00"), apuntes("0001", "10.00"), "")
	require.NoError(t, err)

	_, err = c.CrearAsiento("Corregido", fecha(2024, 3, 1),
		apuntes("0000", "99.00"), apuntes("0001", "99.00"), codigo)
	require.NoError(t, err)

	mayor, err := c.MayorizarCuenta("0000")
	require.NoError(t, err)
	require.Len(t, mayor.Debe, 1)
	assert.True(t, mayor.Cuenta.SaldoDeudor.Equal(dec("99.00")))
}

func TestBalanceComprobacion(t *testing.T) {
	c := setupCuadro(t)
	postear(t, c, "Apertura", apuntes("0000", "300.00"), apuntes("0001", "300.00"))
	postear(t, c, "Pago", apuntes("0002", "20.00"), apuntes("0000", "20.00"))

	filas := c.BalanceComprobacion()
	require.Len(t, filas, 3)

	// Registry order.
	assert.Equal(t, "0000", filas[0].Cuenta.Codigo)
	assert.Equal(t, "0001", filas[1].Cuenta.Codigo)
	assert.Equal(t, "0002", filas[2].Cuenta.Codigo)

	assert.True(t, filas[0].SumaDebe.Equal(dec("300.00")))
	assert.True(t, filas[0].SumaHaber.Equal(dec("20.00")))

	// Per double entry, total debits equal total credits.
	totalDebe, totalHaber := dec("0"), dec("0")
	for _, fila := range filas {
		totalDebe = totalDebe.Add(fila.SumaDebe)
		totalHaber = totalHaber.Add(fila.SumaHaber)
	}
	assert.True(t, totalDebe.Equal(totalHaber))
}

func TestBalanceComprobacion_SinMovimientos(t *testing.T) {
	c := setupCuadro(t)
	assert.Empty(t, c.BalanceComprobacion())
}
