package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cuadra-dev/cuadra/internal/presupuesto"
)

const anchoGrafica = 20

// Presupuesto renders the budget-consumption chart: actual against
// budgeted per account, with a bar per 5% consumed.
func Presupuesto(w io.Writer, filas []presupuesto.Consumo) {
	cien := decimal.NewFromInt(100)
	for _, fila := range filas {
		var porcentaje decimal.Decimal
		if !fila.Presupuestado.IsZero() {
			porcentaje = fila.Real.Mul(cien).Div(fila.Presupuestado)
		}

		barras := int(porcentaje.Div(decimal.NewFromInt(5)).Round(0).IntPart())
		if barras < 0 {
			barras = 0
		}
		if barras > anchoGrafica {
			barras = anchoGrafica
		}
		grafica := strings.Repeat("#", barras) + strings.Repeat("-", anchoGrafica-barras)

		fmt.Fprintf(w, "%-20s|%10s €|%10s €|%9s %%|%s\n",
			fila.Nombre,
			fila.Real.StringFixed(2),
			fila.Presupuestado.StringFixed(2),
			porcentaje.StringFixed(2),
			grafica)
	}
}
