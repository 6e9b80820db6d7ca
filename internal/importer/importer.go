// Package importer parses the flat-file inputs (account definitions,
// per-day entry files, the opening balance) and feeds them into a
// cuadro.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Aviso records an input line or block that was skipped during a
// best-effort parse.
type Aviso struct {
	Linea  int
	Texto  string
	Motivo string
}

// FileInfo describes one daily entry file found in the diario directory.
type FileInfo struct {
	Name  string
	Path  string
	Fecha time.Time
}

const (
	extDiario   = ".data"
	fechaLayout = "20060102"
)

// Scan returns the daily entry files in dir, in lexical order, which for
// YYYYMMDD-prefixed names is chronological order. Files whose name does
// not start with a valid date are reported as avisos and skipped.
func Scan(dir string) ([]FileInfo, []Aviso, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("reading diario dir: %w", err)
	}

	var files []FileInfo
	var avisos []Aviso
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), extDiario) {
			continue
		}
		fecha, err := fechaDeNombre(e.Name())
		if err != nil {
			avisos = append(avisos, Aviso{Texto: e.Name(), Motivo: err.Error()})
			continue
		}
		files = append(files, FileInfo{
			Name:  e.Name(),
			Path:  filepath.Join(dir, e.Name()),
			Fecha: fecha,
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, avisos, nil
}

// fechaDeNombre parses the YYYYMMDD prefix of a daily file name.
func fechaDeNombre(name string) (time.Time, error) {
	if len(name) < len(fechaLayout) {
		return time.Time{}, fmt.Errorf("name %q too short for a date prefix", name)
	}
	fecha, err := time.Parse(fechaLayout, name[:len(fechaLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date prefix of %q: %w", name, err)
	}
	return fecha, nil
}
