package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cuadra-dev/cuadra/internal/model"
)

// Opening-balance section headers. ACTIVO sections open the debit side
// of the synthesized asiento; PASIVO and PATRIMONIO NETO the credit
// side. Prefix matching accepts the CORRIENTE / NO CORRIENTE variants.
const (
	cabeceraActivo     = "ACTIVO"
	cabeceraPasivo     = "PASIVO"
	cabeceraPatrimonio = "PATRIMONIO"
)

// ParseBalance reads an initial-balance file and returns the debit and
// credit apuntes of the opening entry. Lines under an unrecognized
// header are reported as avisos and skipped.
func ParseBalance(r io.Reader) (debe, haber []model.Apunte, avisos []Aviso, err error) {
	const (
		ladoNinguno = iota
		ladoDebe
		ladoHaber
	)
	lado := ladoNinguno

	s := bufio.NewScanner(r)
	num := 0
	for s.Scan() {
		num++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if mayus := strings.ToUpper(line); !empiezaConDigito(line) {
			switch {
			case strings.HasPrefix(mayus, cabeceraActivo):
				lado = ladoDebe
			case strings.HasPrefix(mayus, cabeceraPasivo), strings.HasPrefix(mayus, cabeceraPatrimonio):
				lado = ladoHaber
			default:
				avisos = append(avisos, Aviso{Linea: num, Texto: line, Motivo: "unknown section header"})
				lado = ladoNinguno
			}
			continue
		}

		apunte, perr := parseApunte(line)
		if perr != nil {
			avisos = append(avisos, Aviso{Linea: num, Texto: line, Motivo: perr.Error()})
			continue
		}
		switch lado {
		case ladoDebe:
			debe = append(debe, apunte)
		case ladoHaber:
			haber = append(haber, apunte)
		default:
			avisos = append(avisos, Aviso{Linea: num, Texto: line, Motivo: "amount line outside any section"})
		}
	}
	if serr := s.Err(); serr != nil {
		return nil, nil, nil, fmt.Errorf("reading balance file: %w", serr)
	}
	return debe, haber, avisos, nil
}

func empiezaConDigito(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
