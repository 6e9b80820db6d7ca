package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cuadra-dev/cuadra/internal/gitops"
)

func newCargarCommand(logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "cargar [directorio]",
		Short: "Carga cuentas, balance inicial y diarios, y resume el resultado",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}

			log := logger()
			_, cfg, res, err := abrirCuadro(dir, log)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cuentas: %d  Asientos: %d  Ficheros: %d  Omitidos: %d\n",
				res.CuentasCreadas, res.AsientosCreados, res.FicherosLeidos, res.Omitidos)

			if !cfg.Git.AutoCommit || !gitops.IsRepo(dir) {
				return nil
			}
			cambios, err := gitops.HasChanges(dir)
			if err != nil || !cambios {
				return err
			}
			msg := fmt.Sprintf("cargar: %d asientos de %d ficheros", res.AsientosCreados, res.FicherosLeidos)
			hash, err := gitops.CommitAll(dir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
			if err != nil {
				return fmt.Errorf("auto-commit: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Commit %s\n", hash)
			return nil
		},
	}
}
