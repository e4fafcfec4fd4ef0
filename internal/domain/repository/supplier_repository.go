package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para ofertas de proveedores.
type SupplierRepository interface {
	// OffersForMaterial lista las ofertas de una materia prima ordenadas por
	// costo unitario ascendente. TotalCost se calcula sobre quantity.
	// Lista vacía si nadie la ofrece (no es error).
	OffersForMaterial(materialID int64, quantity decimal.Decimal) ([]*entity.SupplierOffer, error)

	// CheapestOffer devuelve la oferta más barata vigente para la materia prima,
	// con TotalCost sobre quantity. Devuelve (nil, nil) si no hay ofertas.
	CheapestOffer(materialID int64, quantity decimal.Decimal) (*entity.SupplierOffer, error)
}
