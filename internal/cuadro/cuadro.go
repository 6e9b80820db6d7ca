// Package cuadro implements the accounting core: the chart-of-accounts
// registry, the libro diario and the ledger views derived from it.
package cuadro

import (
	"errors"
	"fmt"

	"github.com/cuadra-dev/cuadra/internal/model"
	"github.com/cuadra-dev/cuadra/internal/pgc"
)

var (
	// ErrCuadroNoVacio is returned when bulk-loading the standard chart
	// into a registry that already holds accounts.
	ErrCuadroNoVacio = errors.New("el cuadro ya contiene cuentas")
	// ErrCuentaDuplicada is returned when creating an account whose code
	// is already registered.
	ErrCuentaDuplicada = errors.New("la cuenta ya existe")
	// ErrCuentaInexistente is returned when an entry references an
	// unknown account code.
	ErrCuentaInexistente = errors.New("el código de cuenta no existe")
	// ErrAsientoDesequilibrado is returned when an entry's debit total
	// does not match its credit total.
	ErrAsientoDesequilibrado = errors.New("el debe y el haber del asiento no coinciden")
	// ErrAsientoInexistente is returned when looking up an unknown
	// asiento code.
	ErrAsientoInexistente = errors.New("el asiento no existe")
)

// Cuadro owns the account registry and the journal. Accounts are kept in
// creation order with a map for lookup; asientos are an append-only list
// where re-posting an existing code replaces the old entry in place.
type Cuadro struct {
	cuentas   []*model.Cuenta
	porCodigo map[string]*model.Cuenta
	asientos  []*model.Asiento
}

// New returns an empty Cuadro.
func New() *Cuadro {
	return &Cuadro{porCodigo: make(map[string]*model.Cuenta)}
}

// CrearCuenta registers a new account.
func (c *Cuadro) CrearCuenta(nombre, codigo string, masa model.Masa) error {
	if existente, ok := c.porCodigo[codigo]; ok {
		return fmt.Errorf("%s ~ %s: %w", existente.Codigo, existente.Nombre, ErrCuentaDuplicada)
	}
	cuenta := &model.Cuenta{Codigo: codigo, Nombre: nombre, Masa: masa}
	c.cuentas = append(c.cuentas, cuenta)
	c.porCodigo[codigo] = cuenta
	return nil
}

// BuscarCuenta returns the account registered under codigo.
func (c *Cuadro) BuscarCuenta(codigo string) (*model.Cuenta, bool) {
	cuenta, ok := c.porCodigo[codigo]
	return cuenta, ok
}

// Cuentas returns all accounts in creation order.
func (c *Cuadro) Cuentas() []*model.Cuenta {
	return c.cuentas
}

// PorMasa returns the accounts classified under masa, in creation order.
func (c *Cuadro) PorMasa(masa model.Masa) []*model.Cuenta {
	var result []*model.Cuenta
	for _, cuenta := range c.cuentas {
		if cuenta.Masa == masa {
			result = append(result, cuenta)
		}
	}
	return result
}

// CargarPGC bulk-loads the standard PGC chart into an empty cuadro,
// classifying each code. Codes without a masa are skipped and returned
// so the caller can report them. Loading into a non-empty registry
// fails with ErrCuadroNoVacio.
func (c *Cuadro) CargarPGC() ([]string, error) {
	if len(c.cuentas) > 0 {
		return nil, ErrCuadroNoVacio
	}

	var perdidos []string
	for _, fila := range pgc.Cuentas() {
		masa, ok := pgc.Clasificar(fila.Codigo)
		if !ok {
			perdidos = append(perdidos, fila.Codigo)
			continue
		}
		if err := c.CrearCuenta(fila.Nombre, fila.Codigo, masa); err != nil {
			return perdidos, err
		}
	}
	return perdidos, nil
}
