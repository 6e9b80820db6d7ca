// Package presupuesto holds a budget: forecast expense/income items
// over a date range, aggregated per account and comparable against the
// ledger.
package presupuesto

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cuadra-dev/cuadra/internal/cuadro"
)

// ErrRangoInvalido is returned when a range ends before it starts.
var ErrRangoInvalido = errors.New("la fecha de fin es anterior a la de inicio")

// Rango is an inclusive date range.
type Rango struct {
	Inicio time.Time
	Fin    time.Time
}

// NuevoRango builds a range. Zero bounds default to the next calendar
// month (its first and last day).
func NuevoRango(inicio, fin time.Time) (Rango, error) {
	now := time.Now()
	if inicio.IsZero() {
		inicio = time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	}
	if fin.IsZero() {
		fin = time.Date(now.Year(), now.Month()+2, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	if fin.Before(inicio) {
		return Rango{}, ErrRangoInvalido
	}
	return Rango{Inicio: inicio, Fin: fin}, nil
}

// Dias returns the number of days in the range, both ends included.
func (r Rango) Dias() int {
	return int(r.Fin.Sub(r.Inicio).Hours()/24) + 1
}

// Item is one budgeted concept charged to an account. Daily items are
// multiplied by the number of days in the range; one-off items count
// once.
type Item struct {
	Concepto string
	Cuenta   string
	Importe  decimal.Decimal
	Diario   bool
}

// Presupuesto aggregates items into per-account partidas, validating
// every account against the cuadro.
type Presupuesto struct {
	Rango    Rango
	items    []Item
	partidas map[string]decimal.Decimal
	cd       *cuadro.Cuadro
}

// New returns an empty budget over rango backed by cd's registry.
func New(rango Rango, cd *cuadro.Cuadro) *Presupuesto {
	return &Presupuesto{
		Rango:    rango,
		partidas: make(map[string]decimal.Decimal),
		cd:       cd,
	}
}

// InsertarDiario adds a daily item.
func (p *Presupuesto) InsertarDiario(concepto, cuenta string, importe decimal.Decimal) error {
	return p.insertar(Item{Concepto: concepto, Cuenta: cuenta, Importe: importe, Diario: true})
}

// InsertarPuntual adds a one-off item.
func (p *Presupuesto) InsertarPuntual(concepto, cuenta string, importe decimal.Decimal) error {
	return p.insertar(Item{Concepto: concepto, Cuenta: cuenta, Importe: importe})
}

func (p *Presupuesto) insertar(item Item) error {
	if _, ok := p.cd.BuscarCuenta(item.Cuenta); !ok {
		return fmt.Errorf("cuenta %q: %w", item.Cuenta, cuadro.ErrCuentaInexistente)
	}

	importe := item.Importe
	if item.Diario {
		importe = importe.Mul(decimal.NewFromInt(int64(p.Rango.Dias())))
	}
	p.partidas[item.Cuenta] = p.partidas[item.Cuenta].Add(importe)
	p.items = append(p.items, item)
	return nil
}

// Items returns the budgeted items in insertion order.
func (p *Presupuesto) Items() []Item {
	return p.items
}

// Partida returns the aggregated budget for one account.
func (p *Presupuesto) Partida(cuenta string) decimal.Decimal {
	return p.partidas[cuenta]
}

// Consumo is one row of the budget-consumption report: budgeted versus
// actual ledger balance for an account.
type Consumo struct {
	Cuenta        string
	Nombre        string
	Presupuestado decimal.Decimal
	Real          decimal.Decimal
}

// Consumos replays the ledger for every budgeted account and pairs the
// partida with the account's current balance, largest budget first.
func (p *Presupuesto) Consumos() ([]Consumo, error) {
	var filas []Consumo
	for codigo, partida := range p.partidas {
		mayor, err := p.cd.MayorizarCuenta(codigo)
		if err != nil {
			return nil, err
		}
		filas = append(filas, Consumo{
			Cuenta:        codigo,
			Nombre:        mayor.Cuenta.Nombre,
			Presupuestado: partida,
			Real:          mayor.Cuenta.Saldo(),
		})
	}
	sort.Slice(filas, func(i, j int) bool {
		if !filas[i].Presupuestado.Equal(filas[j].Presupuestado) {
			return filas[i].Presupuestado.GreaterThan(filas[j].Presupuestado)
		}
		return filas[i].Cuenta < filas[j].Cuenta
	})
	return filas, nil
}
