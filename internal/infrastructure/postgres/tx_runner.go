package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/compras-mcp/internal/application/procurement"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

// Ensure TxRunner implements procurement.TxRunner.
var _ procurement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Cualquier error dentro de fn revierte todos los writes de la orden.
func (r *TxRunner) Run(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	cashRepo repository.CashRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	supplierRepo := NewSupplierRepository(tx)
	cashRepo := NewCashRepository(tx)
	orderRepo := NewOrderRepository(tx)

	if err := fn(supplierRepo, cashRepo, orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
