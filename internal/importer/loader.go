package importer

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cuadra-dev/cuadra/internal/cuadro"
	"github.com/cuadra-dev/cuadra/internal/oplog"
	"github.com/cuadra-dev/cuadra/internal/pgc"
)

// Opciones configures a load run. Empty paths are skipped. The balance
// file, when set, is mandatory: an unreadable or unbalanced opening
// aborts the load. Everything else is best-effort, logged and skipped.
type Opciones struct {
	CargarPGC      bool
	FicheroCuentas string
	BalanceInicial string
	FechaApertura  time.Time
	DirDiario      string
	LogRoot        string // when set, one oplog row per processed file
}

// Resumen summarizes a load run.
type Resumen struct {
	CuentasCreadas  int
	AsientosCreados int
	FicherosLeidos  int
	Omitidos        int
}

// Loader feeds parsed files into a cuadro, logging what it skips.
type Loader struct {
	log *slog.Logger
}

// NewLoader returns a Loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{log: logger}
}

// Cargar runs a full load into cd: the standard chart and/or the account
// definitions, then the opening balance, then every daily file in the
// diario directory, in date order.
func (l *Loader) Cargar(cd *cuadro.Cuadro, opts Opciones) (*Resumen, error) {
	res := &Resumen{}

	if opts.CargarPGC {
		perdidos, err := cd.CargarPGC()
		if err != nil {
			return nil, fmt.Errorf("loading standard chart: %w", err)
		}
		for _, codigo := range perdidos {
			l.log.Warn("código perdido al cargar el PGC", "codigo", codigo)
			res.Omitidos++
		}
		res.CuentasCreadas += len(cd.Cuentas())
	}

	if opts.FicheroCuentas != "" {
		res.CuentasCreadas += l.cargarCuentas(cd, opts.FicheroCuentas, res)
	}

	if opts.BalanceInicial != "" {
		if err := l.cargarBalance(cd, opts.BalanceInicial, opts.FechaApertura, res); err != nil {
			return nil, err
		}
	}

	if opts.DirDiario != "" {
		if err := l.cargarDiario(cd, opts.DirDiario, opts.LogRoot, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (l *Loader) cargarCuentas(cd *cuadro.Cuadro, path string, res *Resumen) int {
	f, err := os.Open(path)
	if err != nil {
		l.log.Warn("cannot read account definitions", "path", path, "error", err)
		return 0
	}
	defer f.Close()

	defs, avisos, err := ParseCuentas(f)
	if err != nil {
		l.log.Warn("cannot read account definitions", "path", path, "error", err)
		return 0
	}
	l.avisar(path, avisos, res)

	creadas := 0
	for _, def := range defs {
		masa, ok := pgc.Clasificar(def.Codigo)
		if !ok {
			l.log.Warn("unclassifiable account code", "path", path, "codigo", def.Codigo)
			res.Omitidos++
			continue
		}
		if err := cd.CrearCuenta(def.Nombre, def.Codigo, masa); err != nil {
			l.log.Warn("skipping account definition", "path", path, "codigo", def.Codigo, "error", err)
			res.Omitidos++
			continue
		}
		creadas++
	}
	return creadas
}

func (l *Loader) cargarBalance(cd *cuadro.Cuadro, path string, fecha time.Time, res *Resumen) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening balance file: %w", err)
	}
	defer f.Close()

	debe, haber, avisos, err := ParseBalance(f)
	if err != nil {
		return err
	}
	l.avisar(path, avisos, res)

	if len(debe) == 0 && len(haber) == 0 {
		return nil
	}

	codigo, err := cd.CrearAsiento("Asiento de apertura", fecha, debe, haber, "")
	if err != nil {
		return fmt.Errorf("posting opening entry from %s: %w", path, err)
	}
	res.AsientosCreados++
	l.log.Info("opening entry posted", "path", path, "asiento", codigo)
	return nil
}

func (l *Loader) cargarDiario(cd *cuadro.Cuadro, dir, logRoot string, res *Resumen) error {
	files, avisos, err := Scan(dir)
	if err != nil {
		return err
	}
	l.avisar(dir, avisos, res)

	for _, fi := range files {
		codigos, err := l.cargarFichero(cd, fi, res)
		if err != nil {
			l.log.Warn("skipping daily file", "path", fi.Path, "error", err)
			res.Omitidos++
			continue
		}
		res.FicherosLeidos++

		if logRoot == "" {
			continue
		}
		entry := oplog.Entry{
			Timestamp: time.Now(),
			Accion:    "cargar",
			Fichero:   fi.Name,
			Detalle:   fmt.Sprintf("asientos=%d", len(codigos)),
			Asientos:  strings.Join(codigos, ";"),
		}
		if err := oplog.Append(logRoot, []oplog.Entry{entry}); err != nil {
			l.log.Warn("cannot append to operation log", "error", err)
		}
	}
	return nil
}

func (l *Loader) cargarFichero(cd *cuadro.Cuadro, fi FileInfo, res *Resumen) ([]string, error) {
	f, err := os.Open(fi.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bloques, avisos, err := ParseDiario(f, fi.Fecha)
	if err != nil {
		return nil, err
	}
	l.avisar(fi.Path, avisos, res)

	var codigos []string
	for _, b := range bloques {
		codigo, err := cd.CrearAsiento(b.Concepto, b.Fecha, b.Debe, b.Haber, "")
		if err != nil {
			l.log.Warn("skipping entry block", "path", fi.Path, "concepto", b.Concepto, "error", err)
			res.Omitidos++
			continue
		}
		codigos = append(codigos, codigo)
		res.AsientosCreados++
	}
	return codigos, nil
}

func (l *Loader) avisar(origen string, avisos []Aviso, res *Resumen) {
	for _, a := range avisos {
		l.log.Warn("skipping input line", "origen", origen, "linea", a.Linea, "texto", a.Texto, "motivo", a.Motivo)
		res.Omitidos++
	}
}
