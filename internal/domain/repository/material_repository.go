package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para materias primas.
type MaterialRepository interface {
	// RequirementsForProduct calcula, para cada materia prima ligada al producto,
	// la cantidad necesaria (cantidad por unidad × quantity), el stock actual y
	// el faltante (GREATEST(0, necesaria - stock)). Incluye materias sin faltante.
	RequirementsForProduct(productID int64, quantity decimal.Decimal) ([]*entity.MaterialRequirement, error)
}
