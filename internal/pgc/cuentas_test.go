package pgc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuentas_TablaEstandar(t *testing.T) {
	filas := Cuentas()
	require.Len(t, filas, 261)

	vistos := make(map[string]bool, len(filas))
	for _, fila := range filas {
		assert.NotEmpty(t, fila.Nombre, "code %s has no name", fila.Codigo)
		assert.False(t, vistos[fila.Codigo], "duplicate code %s", fila.Codigo)
		vistos[fila.Codigo] = true
	}
}

func TestCuentas_CodigosSinMasa(t *testing.T) {
	// The financial subgroups without a masa under Clasificar; everything
	// else in the table must classify.
	sinMasa := map[string]bool{
		"500": true, "520": true, "523": true,
		"551": true, "560": true, "565": true,
	}

	for _, fila := range Cuentas() {
		_, ok := Clasificar(fila.Codigo)
		assert.Equal(t, !sinMasa[fila.Codigo], ok, "Clasificar(%q)", fila.Codigo)
	}
}
