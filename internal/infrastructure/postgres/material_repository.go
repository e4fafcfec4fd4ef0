package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para materias primas.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// RequirementsForProduct calcula requerimiento, stock y faltante por materia
// prima del producto. El faltante se deriva en SQL (GREATEST) para que el
// invariante faltante >= 0 se cumpla desde el origen. Orden fijo por mp.id.
func (r *MaterialRepo) RequirementsForProduct(productID int64, quantity decimal.Decimal) ([]*entity.MaterialRequirement, error) {
	query := `
		SELECT
			mp.id,
			mp.nombre,
			(mpp.cantidad * $1) AS cantidad_necesaria,
			mp.stock,
			GREATEST(0, (mpp.cantidad * $1) - mp.stock) AS faltante
		FROM materia_prima_producto mpp
		JOIN materia_prima mp ON mpp.fkMateriaPrima = mp.id
		WHERE mpp.fkProducto = $2
		ORDER BY mp.id`
	rows, err := r.q.Query(context.Background(), query, quantity, productID)
	if err != nil {
		return nil, fmt.Errorf("requerimientos de producto: %w", err)
	}
	defer rows.Close()

	var list []*entity.MaterialRequirement
	for rows.Next() {
		var m entity.MaterialRequirement
		if err := rows.Scan(&m.MaterialID, &m.Name, &m.QuantityNeeded, &m.CurrentStock, &m.Shortfall); err != nil {
			return nil, fmt.Errorf("scan requerimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
