package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para ofertas de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// OffersForMaterial lista ofertas ordenadas por costo unitario ascendente.
// El desempate secundario por nit fija un orden total reproducible.
func (r *SupplierRepo) OffersForMaterial(materialID int64, quantity decimal.Decimal) ([]*entity.SupplierOffer, error) {
	query := `
		SELECT p.nit, p.nombre, pmp.costoUnidad, (pmp.costoUnidad * $1) AS costo_total
		FROM proveedor_materia_prima pmp
		JOIN proveedor p ON pmp.fkProveedor = p.nit
		WHERE pmp.fkMateriaPrima = $2
		ORDER BY pmp.costoUnidad ASC, p.nit ASC`
	rows, err := r.q.Query(context.Background(), query, quantity, materialID)
	if err != nil {
		return nil, fmt.Errorf("ofertas de materia prima: %w", err)
	}
	defer rows.Close()

	var list []*entity.SupplierOffer
	for rows.Next() {
		var o entity.SupplierOffer
		if err := rows.Scan(&o.SupplierID, &o.SupplierName, &o.UnitCost, &o.TotalCost); err != nil {
			return nil, fmt.Errorf("scan oferta: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// CheapestOffer devuelve la oferta más barata vigente. Devuelve (nil, nil) si no hay ofertas.
func (r *SupplierRepo) CheapestOffer(materialID int64, quantity decimal.Decimal) (*entity.SupplierOffer, error) {
	query := `
		SELECT p.nit, p.nombre, pmp.costoUnidad, (pmp.costoUnidad * $1) AS costo_total
		FROM proveedor_materia_prima pmp
		JOIN proveedor p ON pmp.fkProveedor = p.nit
		WHERE pmp.fkMateriaPrima = $2
		ORDER BY pmp.costoUnidad ASC, p.nit ASC
		LIMIT 1`
	var o entity.SupplierOffer
	err := r.q.QueryRow(context.Background(), query, quantity, materialID).Scan(
		&o.SupplierID, &o.SupplierName, &o.UnitCost, &o.TotalCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("oferta más barata: %w", err)
	}
	return &o, nil
}
