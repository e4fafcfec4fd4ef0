package procurement

import (
	"context"

	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para la creación de órdenes de compra: o se persiste la
// cabecera con todas sus líneas, o no se persiste nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		supplierRepo repository.SupplierRepository,
		cashRepo repository.CashRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
