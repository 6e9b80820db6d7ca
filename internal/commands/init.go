package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cuadra-dev/cuadra/internal/config"
	"github.com/cuadra-dev/cuadra/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var nombre string
	var pgc bool

	cmd := &cobra.Command{
		Use:   "init [directorio]",
		Short: "Inicializa un directorio de contabilidad",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			return runInit(cmd, dir, nombre, pgc)
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "business or personal ledger name (required)")
	_ = cmd.MarkFlagRequired("nombre")
	cmd.Flags().BoolVar(&pgc, "pgc", false, "preload the standard PGC chart instead of a cuentas.txt seed")

	return cmd
}

const cuentasSeed = `# Definición de cuentas: <código> <nombre>
100 Capital
570 Caja
572 Banco
600 Compras
628 Suministros
640 Sueldos y salarios
700 Ventas
705 Servicios prestados
`

func runInit(cmd *cobra.Command, dir, nombre string, pgc bool) error {
	for _, d := range []string{"diario", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(nombre)
	if pgc {
		cfg.Ficheros.PGC = true
		cfg.Ficheros.Cuentas = ""
	}
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if !pgc {
		if err := os.WriteFile(filepath.Join(dir, "cuentas.txt"), []byte(cuentasSeed), 0o644); err != nil {
			return fmt.Errorf("writing cuentas.txt: %w", err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("logs/\n"), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.CommitAll(dir, "init: "+nombre, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Contabilidad inicializada en %s (%s)\n", dir, hash)
	return nil
}
