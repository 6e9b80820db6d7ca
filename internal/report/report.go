// Package report renders the textual reports: chart listing, libro
// diario, libro mayor and balance de comprobación.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/cuadra-dev/cuadra/internal/cuadro"
	"github.com/cuadra-dev/cuadra/internal/model"
)

const (
	ancho       = 70
	fechaLayout = "2006-01-02"
)

// Cuadro lists every account as "(  code) name".
func Cuadro(w io.Writer, cd *cuadro.Cuadro) {
	for _, c := range cd.Cuentas() {
		fmt.Fprintf(w, "(%6s) %s\n", c.Codigo, c.Nombre)
	}
}

// Diario renders the whole journal, one asiento after another.
func Diario(w io.Writer, cd *cuadro.Cuadro) {
	for _, a := range cd.Asientos() {
		Asiento(w, a)
	}
}

// Asiento renders one journal entry: a centered header with its code,
// concept and date, then both sides.
func Asiento(w io.Writer, a *model.Asiento) {
	fmt.Fprintln(w, centrar(fmt.Sprintf(" Asiento %s ", a.Codigo), '-'))
	for _, linea := range splitLineas(a.Concepto) {
		fmt.Fprintln(w, centrar(" "+linea+" ", '-'))
	}
	fmt.Fprintln(w, centrar(" "+a.Fecha.Format(fechaLayout)+" ", '-'))

	fmt.Fprintln(w, "DEBE")
	for _, m := range a.Debe {
		fmt.Fprintf(w, "  %12s €  %s (%s)\n", m.Importe.StringFixed(2), m.NombreCuenta, m.CodigoCuenta)
	}
	fmt.Fprintln(w, "HABER")
	for _, m := range a.Haber {
		fmt.Fprintf(w, "  %12s €  %s (%s)\n", m.Importe.StringFixed(2), m.NombreCuenta, m.CodigoCuenta)
	}
	fmt.Fprintln(w)
}

// Mayor renders the ledger of one account: its movements by side and
// the resulting totals.
func Mayor(w io.Writer, m *cuadro.Mayor) {
	fmt.Fprintln(w, centrar(fmt.Sprintf(" (%s) %s ", m.Cuenta.Codigo, m.Cuenta.Nombre), '='))

	fmt.Fprintln(w, "DEBE")
	for _, mov := range m.Debe {
		fmt.Fprintf(w, "  %12s €\n", mov.Importe.StringFixed(2))
	}
	fmt.Fprintln(w, "HABER")
	for _, mov := range m.Haber {
		fmt.Fprintf(w, "  %12s €\n", mov.Importe.StringFixed(2))
	}

	fmt.Fprintf(w, "Saldo deudor:   %12s €\n", m.Cuenta.SaldoDeudor.StringFixed(2))
	fmt.Fprintf(w, "Saldo acreedor: %12s €\n", m.Cuenta.SaldoAcreedor.StringFixed(2))
	fmt.Fprintf(w, "Saldo:          %12s €\n", m.Cuenta.Saldo().StringFixed(2))
}

// Balance renders the trial balance with per-account debit/credit sums
// and a closing totals row.
func Balance(w io.Writer, filas []cuadro.SaldoCuenta) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CODIGO\tCUENTA\tDEBE\tHABER\tSALDO\t")

	totalDebe := decimal.Zero
	totalHaber := decimal.Zero
	for _, fila := range filas {
		saldo := fila.SumaDebe.Sub(fila.SumaHaber)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			fila.Cuenta.Codigo, fila.Cuenta.Nombre,
			fila.SumaDebe.StringFixed(2), fila.SumaHaber.StringFixed(2), saldo.StringFixed(2))
		totalDebe = totalDebe.Add(fila.SumaDebe)
		totalHaber = totalHaber.Add(fila.SumaHaber)
	}
	fmt.Fprintf(tw, "\tTOTAL\t%s\t%s\t%s\t\n",
		totalDebe.StringFixed(2), totalHaber.StringFixed(2), totalDebe.Sub(totalHaber).StringFixed(2))
	tw.Flush()
}

func centrar(s string, relleno rune) string {
	n := utf8.RuneCountInString(s)
	if n >= ancho {
		return s
	}
	izq := (ancho - n) / 2
	der := ancho - n - izq
	return strings.Repeat(string(relleno), izq) + s + strings.Repeat(string(relleno), der)
}

func splitLineas(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
