package cuadro

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cuadra-dev/cuadra/internal/model"
)

// Mayor is the ledger view of one account: every movement referencing
// it, split by side and in journal order, after a full replay.
type Mayor struct {
	Cuenta *model.Cuenta
	Debe   []model.Movimiento
	Haber  []model.Movimiento
}

// MayorizarCuenta rebuilds an account's ledger by replaying the whole
// journal. The account's running totals are reset first, so the result
// always reflects the current journal and nothing else.
func (c *Cuadro) MayorizarCuenta(codigo string) (*Mayor, error) {
	cuenta, ok := c.porCodigo[codigo]
	if !ok {
		return nil, fmt.Errorf("cuenta %q: %w", codigo, ErrCuentaInexistente)
	}

	cuenta.SaldoDeudor = decimal.Zero
	cuenta.SaldoAcreedor = decimal.Zero

	mayor := &Mayor{Cuenta: cuenta}
	for _, asiento := range c.asientos {
		for _, m := range asiento.Debe {
			if m.CodigoCuenta == codigo {
				mayor.Debe = append(mayor.Debe, m)
				cuenta.SaldoDeudor = cuenta.SaldoDeudor.Add(m.Importe)
			}
		}
		for _, m := range asiento.Haber {
			if m.CodigoCuenta == codigo {
				mayor.Haber = append(mayor.Haber, m)
				cuenta.SaldoAcreedor = cuenta.SaldoAcreedor.Add(m.Importe)
			}
		}
	}
	return mayor, nil
}

// SaldoCuenta is one row of the trial balance.
type SaldoCuenta struct {
	Cuenta    *model.Cuenta
	SumaDebe  decimal.Decimal
	SumaHaber decimal.Decimal
}

// BalanceComprobacion sums debits and credits per account over the whole
// journal, in a single pass. Accounts with no movements are omitted;
// rows follow registry order.
func (c *Cuadro) BalanceComprobacion() []SaldoCuenta {
	debe := make(map[string]decimal.Decimal)
	haber := make(map[string]decimal.Decimal)
	for _, asiento := range c.asientos {
		for _, m := range asiento.Debe {
			debe[m.CodigoCuenta] = debe[m.CodigoCuenta].Add(m.Importe)
		}
		for _, m := range asiento.Haber {
			haber[m.CodigoCuenta] = haber[m.CodigoCuenta].Add(m.Importe)
		}
	}

	var filas []SaldoCuenta
	for _, cuenta := range c.cuentas {
		d, tieneDebe := debe[cuenta.Codigo]
		h, tieneHaber := haber[cuenta.Codigo]
		if !tieneDebe && !tieneHaber {
			continue
		}
		filas = append(filas, SaldoCuenta{Cuenta: cuenta, SumaDebe: d, SumaHaber: h})
	}
	return filas
}
