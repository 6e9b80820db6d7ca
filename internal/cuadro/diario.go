package cuadro

import (
	"fmt"
	"time"

	"github.com/cuadra-dev/cuadra/internal/id"
	"github.com/cuadra-dev/cuadra/internal/model"
)

// CrearAsiento builds, validates and posts a journal entry. Every
// referenced account must exist; its name is denormalized into the
// movement. Debits must equal credits at 2-decimal precision. An empty
// codigo gets the next free sequence; re-posting an existing codigo
// replaces the old asiento in place, preserving journal order. Returns
// the posted entry's code.
func (c *Cuadro) CrearAsiento(concepto string, fecha time.Time, debe, haber []model.Apunte, codigo string) (string, error) {
	movsDebe, err := c.resolver(debe)
	if err != nil {
		return "", err
	}
	movsHaber, err := c.resolver(haber)
	if err != nil {
		return "", err
	}

	if fecha.IsZero() {
		fecha = time.Now()
	}

	asiento := &model.Asiento{
		Concepto: concepto,
		Fecha:    fecha,
		Debe:     movsDebe,
		Haber:    movsHaber,
	}

	if !asiento.Equilibrado() {
		return "", fmt.Errorf("debe %s, haber %s: %w",
			asiento.SaldoDebe().StringFixed(2), asiento.SaldoHaber().StringFixed(2),
			ErrAsientoDesequilibrado)
	}

	if codigo == "" {
		codigo = id.Format(id.Next(c.codigosAsiento()))
	}
	asiento.Codigo = codigo

	for i, existente := range c.asientos {
		if existente.Codigo == codigo {
			c.asientos[i] = asiento
			return codigo, nil
		}
	}
	c.asientos = append(c.asientos, asiento)
	return codigo, nil
}

// Asientos returns the journal in posting order.
func (c *Cuadro) Asientos() []*model.Asiento {
	return c.asientos
}

// BuscarAsiento returns the asiento posted under codigo.
func (c *Cuadro) BuscarAsiento(codigo string) (*model.Asiento, error) {
	for _, a := range c.asientos {
		if a.Codigo == codigo {
			return a, nil
		}
	}
	return nil, fmt.Errorf("asiento %q: %w", codigo, ErrAsientoInexistente)
}

func (c *Cuadro) resolver(apuntes []model.Apunte) ([]model.Movimiento, error) {
	var movs []model.Movimiento
	for _, ap := range apuntes {
		cuenta, ok := c.porCodigo[ap.Codigo]
		if !ok {
			return nil, fmt.Errorf("cuenta %q: %w", ap.Codigo, ErrCuentaInexistente)
		}
		movs = append(movs, model.Movimiento{
			Importe:      ap.Importe,
			CodigoCuenta: cuenta.Codigo,
			NombreCuenta: cuenta.Nombre,
		})
	}
	return movs, nil
}

func (c *Cuadro) codigosAsiento() []string {
	codigos := make([]string, len(c.asientos))
	for i, a := range c.asientos {
		codigos[i] = a.Codigo
	}
	return codigos
}
