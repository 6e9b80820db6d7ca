// Package pgc interprets account codes of the Plan General de
// Contabilidad and carries the standard chart of accounts.
package pgc

import "github.com/cuadra-dev/cuadra/internal/model"

// Clasificar maps a numeric account code to its masa patrimonial. The
// first digit selects the PGC group, the second the subgroup and the
// third the account; a few subgroups carry account-level exceptions.
// Codes that do not start with a digit or fall outside the plan report
// ok = false; callers log and skip those.
func Clasificar(codigo string) (model.Masa, bool) {
	d := digitosIniciales(codigo)
	if len(d) == 0 {
		return "", false
	}

	grupo := d[0]
	var subgrupo, cuenta byte
	if len(d) > 1 {
		subgrupo = d[1]
	}
	if len(d) > 2 {
		cuenta = d[2]
	}

	switch grupo {
	case '1': // financiación básica
		switch subgrupo {
		case '0', '1', '2', '3':
			return model.MasaPatrimonio, true
		case '4', '5', '6', '7', '8':
			return model.MasaPasivoNoCorriente, true
		}
	case '2': // inmovilizado
		return model.MasaActivoNoCorriente, true
	case '3': // existencias
		return model.MasaActivoCorriente, true
	case '4': // deudores y acreedores
		switch subgrupo {
		case '0', '1':
			return model.MasaPasivoCorriente, true
		case '2': // fuera del PGC: deudas a largo plazo
			return model.MasaPasivoNoCorriente, true
		case '3', '4':
			return model.MasaActivoCorriente, true
		case '5': // fuera del PGC: créditos a largo plazo
			return model.MasaActivoNoCorriente, true
		case '6': // personal
			switch cuenta {
			case '0': // anticipos de remuneraciones
				return model.MasaActivoCorriente, true
			case '5': // remuneraciones pendientes de pago
				return model.MasaPasivoCorriente, true
			}
		case '7': // administraciones públicas
			switch cuenta {
			case '0', '1', '2', '3', '4':
				return model.MasaActivoCorriente, true
			case '5', '6', '7':
				return model.MasaPasivoCorriente, true
			}
		case '8': // ajustes por periodificación
			switch cuenta {
			case '0':
				return model.MasaActivoCorriente, true
			case '5':
				return model.MasaPasivoCorriente, true
			}
		case '9': // provisiones por operaciones comerciales
			return model.MasaPasivoCorriente, true
		}
	case '5': // cuentas financieras
		switch subgrupo {
		case '4':
			return model.MasaActivoNoCorriente, true
		case '7': // tesorería
			return model.MasaActivoCorriente, true
		}
	case '6', '8':
		return model.MasaGasto, true
	case '7', '9':
		return model.MasaIngreso, true
	}
	return "", false
}

func digitosIniciales(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}
