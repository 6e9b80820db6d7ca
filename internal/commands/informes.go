package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cuadra-dev/cuadra/internal/model"
	"github.com/cuadra-dev/cuadra/internal/pgc"
	"github.com/cuadra-dev/cuadra/internal/report"
)

func newDiarioCommand(logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "diario [directorio]",
		Short: "Imprime el libro diario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			cd, _, _, err := abrirCuadro(dir, logger())
			if err != nil {
				return err
			}
			report.Diario(cmd.OutOrStdout(), cd)
			return nil
		},
	}
}

func newMayorCommand(logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "mayor <código> [directorio]",
		Short: "Imprime el libro mayor de una cuenta",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args[1:])
			if err != nil {
				return err
			}
			cd, _, _, err := abrirCuadro(dir, logger())
			if err != nil {
				return err
			}
			mayor, err := cd.MayorizarCuenta(args[0])
			if err != nil {
				return err
			}
			report.Mayor(cmd.OutOrStdout(), mayor)
			return nil
		},
	}
}

func newCuentasCommand(logger func() *slog.Logger) *cobra.Command {
	var masa string
	var estandar bool

	cmd := &cobra.Command{
		Use:   "cuentas [directorio]",
		Short: "Imprime el cuadro de cuentas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if estandar {
				for _, fila := range pgc.Cuentas() {
					fmt.Fprintf(cmd.OutOrStdout(), "(%6s) %s\n", fila.Codigo, fila.Nombre)
				}
				return nil
			}

			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			cd, _, _, err := abrirCuadro(dir, logger())
			if err != nil {
				return err
			}

			if masa == "" {
				report.Cuadro(cmd.OutOrStdout(), cd)
				return nil
			}
			for _, c := range cd.PorMasa(model.Masa(masa)) {
				fmt.Fprintf(cmd.OutOrStdout(), "(%6s) %s\n", c.Codigo, c.Nombre)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&masa, "masa", "", "filter by masa patrimonial (e.g. activo-corriente, gasto)")
	cmd.Flags().BoolVar(&estandar, "pgc", false, "list the standard PGC chart instead of the ledger's accounts")

	return cmd
}

func newBalanceCommand(logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [directorio]",
		Short: "Imprime el balance de comprobación",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			cd, _, _, err := abrirCuadro(dir, logger())
			if err != nil {
				return err
			}
			report.Balance(cmd.OutOrStdout(), cd.BalanceComprobacion())
			return nil
		},
	}
}
