package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseDiario(t *testing.T) {
	input := `Compra de mercaderías

DEBE
600 450.00

HABER
572 450.00
///
Factura de la luz
con dos líneas de concepto

DEBE
628 60,50

HABER
572 60.50
///
`
	f := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	bloques, avisos, err := ParseDiario(strings.NewReader(input), f)
	require.NoError(t, err)
	assert.Empty(t, avisos)
	require.Len(t, bloques, 2)

	assert.Equal(t, "Compra de mercaderías", bloques[0].Concepto)
	assert.Equal(t, f, bloques[0].Fecha)
	require.Len(t, bloques[0].Debe, 1)
	assert.Equal(t, "600", bloques[0].Debe[0].Codigo)
	assert.True(t, bloques[0].Debe[0].Importe.Equal(dec("450.00")))
	require.Len(t, bloques[0].Haber, 1)
	assert.Equal(t, "572", bloques[0].Haber[0].Codigo)

	// Multi-line concept and comma decimal separator.
	assert.Equal(t, "Factura de la luz\ncon dos líneas de concepto", bloques[1].Concepto)
	assert.True(t, bloques[1].Debe[0].Importe.Equal(dec("60.50")))
}

func TestParseDiario_LineaInvalida(t *testing.T) {
	input := `Asiento con línea mala

DEBE
600 no-es-importe
600 10.00

HABER
572 10.00
///
`
	bloques, avisos, err := ParseDiario(strings.NewReader(input), time.Now())
	require.NoError(t, err)
	require.Len(t, bloques, 1)
	require.Len(t, bloques[0].Debe, 1)

	require.Len(t, avisos, 1)
	assert.Equal(t, 4, avisos[0].Linea)
	assert.Contains(t, avisos[0].Motivo, "no-es-importe")
}

func TestParseDiario_BloqueSinTerminar(t *testing.T) {
	input := `Asiento a medias

DEBE
600 10.00
`
	bloques, avisos, err := ParseDiario(strings.NewReader(input), time.Now())
	require.NoError(t, err)
	assert.Empty(t, bloques)
	require.Len(t, avisos, 1)
	assert.Contains(t, avisos[0].Motivo, "not terminated")
}

func TestParseDiario_Vacio(t *testing.T) {
	bloques, avisos, err := ParseDiario(strings.NewReader(""), time.Now())
	require.NoError(t, err)
	assert.Empty(t, bloques)
	assert.Empty(t, avisos)
}
