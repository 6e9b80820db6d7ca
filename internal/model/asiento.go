package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Apunte is a parsed (account code, amount) pair, the shape the file
// parsers hand to the accounting core.
type Apunte struct {
	Codigo  string
	Importe decimal.Decimal
}

// Movimiento is a single posting on one side of an asiento. The account
// name is denormalized at posting time so rendered entries stay readable
// without a registry lookup.
type Movimiento struct {
	Importe      decimal.Decimal
	CodigoCuenta string
	NombreCuenta string
}

// Asiento is a journal entry: a dated, labeled group of debit movements
// and credit movements.
type Asiento struct {
	Codigo   string
	Concepto string
	Fecha    time.Time
	Debe     []Movimiento
	Haber    []Movimiento
}

// SaldoDebe returns the sum of the debit side.
func (a Asiento) SaldoDebe() decimal.Decimal { return sumaImportes(a.Debe) }

// SaldoHaber returns the sum of the credit side.
func (a Asiento) SaldoHaber() decimal.Decimal { return sumaImportes(a.Haber) }

// Equilibrado reports whether debits equal credits, comparing at
// 2-decimal precision.
func (a Asiento) Equilibrado() bool {
	return a.SaldoDebe().Round(2).Equal(a.SaldoHaber().Round(2))
}

func sumaImportes(movs []Movimiento) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		total = total.Add(m.Importe)
	}
	return total
}
