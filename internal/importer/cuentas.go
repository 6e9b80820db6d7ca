package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Definicion is one parsed account-definition line.
type Definicion struct {
	Codigo string
	Nombre string
}

// ParseCuentas reads an account-definition file: one `<code> <name>`
// pair per line. Blank lines and lines starting with '#' are ignored;
// malformed lines are reported as avisos and skipped.
func ParseCuentas(r io.Reader) ([]Definicion, []Aviso, error) {
	var defs []Definicion
	var avisos []Aviso

	s := bufio.NewScanner(r)
	num := 0
	for s.Scan() {
		num++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		codigo, nombre, ok := strings.Cut(line, " ")
		if !ok {
			codigo, nombre, ok = strings.Cut(line, "\t")
		}
		nombre = strings.TrimSpace(nombre)
		if !ok || nombre == "" {
			avisos = append(avisos, Aviso{Linea: num, Texto: line, Motivo: "expected <code> <name>"})
			continue
		}
		defs = append(defs, Definicion{Codigo: codigo, Nombre: nombre})
	}
	if err := s.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading account definitions: %w", err)
	}
	return defs, avisos, nil
}
