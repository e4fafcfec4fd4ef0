package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/compras-mcp/internal/domain"
	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Se usa siempre dentro de una transacción (vía TxRunner).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes de compra.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetStatusByName resuelve un estado de orden por nombre. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetStatusByName(name string) (*entity.OrderStatus, error) {
	var s entity.OrderStatus
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre FROM estado_orden WHERE nombre = $1 LIMIT 1`, name,
	).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estado de orden: %w", err)
	}
	return &s, nil
}

// CreateOrder inserta la cabecera y asigna order.ID con el id generado por la BD.
func (r *OrderRepo) CreateOrder(order *entity.PurchaseOrder) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO orden_compra (fkEstado, costoTotal, fkUsuario)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		order.StatusID, order.TotalCost, order.UserID,
	).Scan(&order.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert orden de compra: %w", err)
	}
	return nil
}

// CreateLine inserta una línea de la orden.
func (r *OrderRepo) CreateLine(line *entity.OrderLine) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO detalle_orden_compra (fkOrdenCompra, fkMateriaPrima, cantidad)
		 VALUES ($1, $2, $3)`,
		line.OrderID, line.MaterialID, line.Quantity,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert detalle de orden: %w", err)
	}
	return nil
}
