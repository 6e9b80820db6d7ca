package model

import "github.com/shopspring/decimal"

// Cuenta is one account in the chart of accounts. Debit/credit totals are
// not maintained at posting time; they are rebuilt from the journal by
// ledger replay.
type Cuenta struct {
	Codigo        string
	Nombre        string
	Masa          Masa
	SaldoDeudor   decimal.Decimal
	SaldoAcreedor decimal.Decimal
}

// Saldo returns the net balance: debits minus credits.
func (c Cuenta) Saldo() decimal.Decimal {
	return c.SaldoDeudor.Sub(c.SaldoAcreedor)
}
