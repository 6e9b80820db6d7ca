package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/cuadra-dev/cuadra/internal/config"
	"github.com/cuadra-dev/cuadra/internal/cuadro"
	"github.com/cuadra-dev/cuadra/internal/importer"
)

// dirArg resolves the optional positional ledger-directory argument.
func dirArg(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[len(args)-1]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

// abrirCuadro loads a full cuadro from a ledger directory. Without a
// cuadra.yaml the directory itself is treated as the diario directory
// and the standard chart is preloaded, which covers running straight
// against a folder of entry files.
func abrirCuadro(dir string, log *slog.Logger) (*cuadro.Cuadro, *config.Config, *importer.Resumen, error) {
	cfgPath := config.Locate(dir)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil, err
		}
		log.Debug("no cuadra.yaml found, loading directory directly", "dir", dir)
		cfg = config.Default("")
		cfg.Ficheros = config.FicherosConfig{DirDiario: ".", PGC: true}
	}

	cd := cuadro.New()
	loader := importer.NewLoader(log)
	res, err := loader.Cargar(cd, importer.Opciones{
		CargarPGC:      cfg.Ficheros.PGC,
		FicheroCuentas: config.Resolve(dir, cfg.Ficheros.Cuentas),
		BalanceInicial: config.Resolve(dir, cfg.Ficheros.BalanceInicial),
		DirDiario:      config.Resolve(dir, cfg.Ficheros.DirDiario),
		LogRoot:        dir,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return cd, cfg, res, nil
}
