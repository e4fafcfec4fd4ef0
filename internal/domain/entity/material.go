package entity

import "github.com/shopspring/decimal"

// Material representa una materia prima con su stock actual.
type Material struct {
	ID    int64
	Name  string
	Stock decimal.Decimal
}

// MaterialRequirement es el requerimiento derivado de una materia prima para
// fabricar una cantidad de producto. No se persiste; se calcula por consulta.
// Invariante: Shortfall = max(0, QuantityNeeded - CurrentStock), nunca negativo.
type MaterialRequirement struct {
	MaterialID     int64
	Name           string
	QuantityNeeded decimal.Decimal // cantidad por unidad × cantidad a fabricar
	CurrentStock   decimal.Decimal
	Shortfall      decimal.Decimal
}

// HasShortfall indica si falta stock para cubrir el requerimiento.
func (m MaterialRequirement) HasShortfall() bool {
	return m.Shortfall.GreaterThan(decimal.Zero)
}
