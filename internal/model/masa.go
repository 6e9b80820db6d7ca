package model

// Masa classifies an account into one of the masas patrimoniales of the
// Plan General de Contabilidad (balance-sheet and income-statement
// categories).
type Masa string

const (
	MasaActivoCorriente   Masa = "activo-corriente"
	MasaActivoNoCorriente Masa = "activo-no-corriente"
	MasaPasivoCorriente   Masa = "pasivo-corriente"
	MasaPasivoNoCorriente Masa = "pasivo-no-corriente"
	MasaPatrimonio        Masa = "patrimonio"
	MasaIngreso           Masa = "ingreso"
	MasaGasto             Masa = "gasto"
)

// Masas lists every category in report order.
func Masas() []Masa {
	return []Masa{
		MasaActivoNoCorriente,
		MasaActivoCorriente,
		MasaPatrimonio,
		MasaPasivoNoCorriente,
		MasaPasivoCorriente,
		MasaIngreso,
		MasaGasto,
	}
}
