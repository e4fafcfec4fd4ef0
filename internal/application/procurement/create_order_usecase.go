package procurement

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/domain"
	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

// CreateOrderUseCase crea una orden de compra de forma transaccional:
// recalcula el costo desde las ofertas vigentes (nunca confía en un total del
// caller), revalida presupuesto, resuelve el estado "Pendiente" y persiste
// cabecera + líneas con Commit/Rollback.
type CreateOrderUseCase struct {
	txRunner TxRunner
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(txRunner TxRunner) *CreateOrderUseCase {
	return &CreateOrderUseCase{txRunner: txRunner}
}

// OrderLineInput es una línea solicitada: materia prima y cantidad a comprar.
type OrderLineInput struct {
	MaterialID int64
	Quantity   decimal.Decimal
}

// OrderCreated es el resultado de la creación: id asignado y costo recalculado.
type OrderCreated struct {
	OrderID   int64
	TotalCost decimal.Decimal
}

// Execute valida la entrada y ejecuta los seis pasos dentro de una transacción.
// Cualquier fallo revierte todo: la BD observa la orden completa o nada.
// Nota: la fila de caja no se bloquea (sin SELECT FOR UPDATE); dos órdenes
// concurrentes pueden validar presupuesto contra el mismo saldo.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, userID int64, lines []OrderLineInput) (*OrderCreated, error) {
	if userID <= 0 || len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range lines {
		if line.MaterialID <= 0 || !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	var result *OrderCreated
	err := uc.txRunner.Run(ctx, func(
		supplierRepo repository.SupplierRepository,
		cashRepo repository.CashRepository,
		orderRepo repository.OrderRepository,
	) error {
		// 1. Costo total desde la oferta más barata vigente de cada materia
		total := decimal.Zero
		for _, line := range lines {
			offer, err := supplierRepo.CheapestOffer(line.MaterialID, line.Quantity)
			if err != nil {
				return err
			}
			if offer == nil {
				return &domain.NoSupplierError{MaterialID: line.MaterialID}
			}
			total = total.Add(offer.TotalCost)
		}

		// 2. Caja autoritativa
		cash, err := cashRepo.GetFirst()
		if err != nil {
			return err
		}
		if cash == nil {
			return domain.ErrNoCashRegister
		}

		// 3. Presupuesto
		if cash.Capital.LessThan(total) {
			return &domain.InsufficientFundsError{Available: cash.Capital, Required: total}
		}

		// 4. Estado "Pendiente" (dato de referencia, nunca se auto-crea)
		status, err := orderRepo.GetStatusByName(entity.StatusPending)
		if err != nil {
			return err
		}
		if status == nil {
			return domain.ErrOrderStatusMissing
		}

		// 5. Cabecera (la BD asigna el id)
		order := &entity.PurchaseOrder{
			StatusID:  status.ID,
			TotalCost: total,
			UserID:    userID,
		}
		if err := orderRepo.CreateOrder(order); err != nil {
			return err
		}

		// 6. Líneas
		for _, line := range lines {
			detail := &entity.OrderLine{
				OrderID:    order.ID,
				MaterialID: line.MaterialID,
				Quantity:   line.Quantity,
			}
			if err := orderRepo.CreateLine(detail); err != nil {
				return err
			}
		}

		result = &OrderCreated{OrderID: order.ID, TotalCost: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
