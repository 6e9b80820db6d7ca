package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cuadra-dev/cuadra/internal/cuadro"
	"github.com/cuadra-dev/cuadra/internal/model"
	"github.com/cuadra-dev/cuadra/internal/presupuesto"
	"github.com/cuadra-dev/cuadra/internal/report"
)

// newPruebaCommand seeds an in-memory demo ledger and prints its
// reports, without touching the filesystem.
func newPruebaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prueba",
		Short: "Ejecuta una demostración con datos de ejemplo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cd := cuadro.New()
			if _, err := cd.CargarPGC(); err != nil {
				return err
			}

			fecha := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
			asientos := []struct {
				concepto string
				debe     []model.Apunte
				haber    []model.Apunte
			}{
				{
					"Aportación de capital",
					apuntes("572", "3000.00"),
					apuntes("100", "3000.00"),
				},
				{
					"Compra de mercaderías",
					apuntes("600", "450.00"),
					apuntes("572", "450.00"),
				},
				{
					"Factura de suministros",
					apuntes("628", "120.50"),
					apuntes("572", "120.50"),
				},
				{
					"Venta de mercaderías",
					apuntes("572", "925.00"),
					apuntes("700", "925.00"),
				},
			}
			for i, a := range asientos {
				f := fecha.AddDate(0, 0, i)
				if _, err := cd.CrearAsiento(a.concepto, f, a.debe, a.haber, ""); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			report.Diario(out, cd)
			report.Balance(out, cd.BalanceComprobacion())

			rango, err := presupuesto.NuevoRango(
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			)
			if err != nil {
				return err
			}
			pres := presupuesto.New(rango, cd)
			if err := pres.InsertarDiario("Compra diaria", "600", dec("20.00")); err != nil {
				return err
			}
			if err := pres.InsertarPuntual("Suministros del mes", "628", dec("150.00")); err != nil {
				return err
			}
			consumos, err := pres.Consumos()
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			report.Presupuesto(out, consumos)
			return nil
		},
	}
}

func apuntes(codigo, importe string) []model.Apunte {
	return []model.Apunte{{Codigo: codigo, Importe: dec(importe)}}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
