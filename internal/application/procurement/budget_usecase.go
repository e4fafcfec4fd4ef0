package procurement

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/domain"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

// BudgetUseCase valida si la caja cubre el costo de una orden de compra.
// Comparación pura contra la caja autoritativa, sin efectos.
type BudgetUseCase struct {
	cashRepo repository.CashRepository
}

// NewBudgetUseCase construye el caso de uso.
func NewBudgetUseCase(cashRepo repository.CashRepository) *BudgetUseCase {
	return &BudgetUseCase{cashRepo: cashRepo}
}

// BudgetCheck es el resultado de la validación de presupuesto.
// Difference puede ser negativa (cuánto falta para cubrir el costo).
type BudgetCheck struct {
	CashRegisterID int64
	Available      decimal.Decimal
	Required       decimal.Decimal
	Sufficient     bool
	Difference     decimal.Decimal
}

// Execute compara el costo requerido contra el capital disponible.
func (uc *BudgetUseCase) Execute(ctx context.Context, required decimal.Decimal) (*BudgetCheck, error) {
	if !required.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	cash, err := uc.cashRepo.GetFirst()
	if err != nil {
		return nil, err
	}
	if cash == nil {
		return nil, domain.ErrNoCashRegister
	}

	return &BudgetCheck{
		CashRegisterID: cash.ID,
		Available:      cash.Capital,
		Required:       required,
		Sufficient:     cash.Capital.GreaterThanOrEqual(required),
		Difference:     cash.Capital.Sub(required),
	}, nil
}
