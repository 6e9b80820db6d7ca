package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cuadra-dev/cuadra/internal/model"
)

// Bloque is one parsed entry block from a daily file, ready to be posted
// as an asiento.
type Bloque struct {
	Concepto string
	Fecha    time.Time
	Debe     []model.Apunte
	Haber    []model.Apunte
}

// Daily file block grammar: concept text, blank line, DEBE, one
// `<code> <amount>` per line, blank line, HABER, same format, terminated
// by ///. A file may carry several blocks.
const (
	marcaDebe  = "DEBE"
	marcaHaber = "HABER"
	marcaFin   = "///"
)

type seccion int

const (
	enConcepto seccion = iota
	enDebe
	enHaber
)

// ParseDiario reads every entry block from a daily file. The entry date
// comes from the file name, so it is passed in. Malformed amount lines
// and unterminated blocks are reported as avisos and skipped.
func ParseDiario(r io.Reader, fecha time.Time) ([]Bloque, []Aviso, error) {
	var bloques []Bloque
	var avisos []Aviso

	var concepto []string
	bloque := Bloque{Fecha: fecha}
	estado := enConcepto

	reinicia := func() {
		concepto = nil
		bloque = Bloque{Fecha: fecha}
		estado = enConcepto
	}

	s := bufio.NewScanner(r)
	num := 0
	for s.Scan() {
		num++
		line := strings.TrimSpace(s.Text())

		switch {
		case line == "":
			continue
		case line == marcaFin:
			bloque.Concepto = strings.Join(concepto, "\n")
			if bloque.Concepto == "" && len(bloque.Debe) == 0 && len(bloque.Haber) == 0 {
				reinicia()
				continue
			}
			bloques = append(bloques, bloque)
			reinicia()
		case line == marcaDebe:
			estado = enDebe
		case line == marcaHaber:
			estado = enHaber
		case estado == enConcepto:
			concepto = append(concepto, line)
		default:
			apunte, err := parseApunte(line)
			if err != nil {
				avisos = append(avisos, Aviso{Linea: num, Texto: line, Motivo: err.Error()})
				continue
			}
			if estado == enDebe {
				bloque.Debe = append(bloque.Debe, apunte)
			} else {
				bloque.Haber = append(bloque.Haber, apunte)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading daily file: %w", err)
	}

	if len(concepto) > 0 || len(bloque.Debe) > 0 || len(bloque.Haber) > 0 {
		avisos = append(avisos, Aviso{Linea: num, Texto: strings.Join(concepto, " "), Motivo: "block not terminated with ///"})
	}
	return bloques, avisos, nil
}

// parseApunte parses a `<code> <amount>` line. Amounts accept a comma
// as decimal separator.
func parseApunte(line string) (model.Apunte, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return model.Apunte{}, fmt.Errorf("expected <code> <amount>, got %d fields", len(fields))
	}

	importe, err := decimal.NewFromString(strings.ReplaceAll(fields[1], ",", "."))
	if err != nil {
		return model.Apunte{}, fmt.Errorf("parsing amount %q: %w", fields[1], err)
	}
	return model.Apunte{Codigo: fields[0], Importe: importe}, nil
}
