package procurement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/compras-mcp/internal/domain"
	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
)

// Costo requerido cero o negativo → entrada inválida.
func TestBudget_CostoInvalido(t *testing.T) {
	uc := NewBudgetUseCase(&fakeCashRepo{cash: &entity.CashRegister{ID: 1, Capital: d("100")}})

	_, err := uc.Execute(context.Background(), d("0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), d("-10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin caja configurada → error de configuración, no de usuario.
func TestBudget_SinCaja(t *testing.T) {
	uc := NewBudgetUseCase(&fakeCashRepo{cash: nil})

	_, err := uc.Execute(context.Background(), d("50"))
	assert.ErrorIs(t, err, domain.ErrNoCashRegister)
}

// Ejemplo de referencia: capital 100, requerido 120 → insuficiente, diferencia -20.
func TestBudget_FondosInsuficientes(t *testing.T) {
	uc := NewBudgetUseCase(&fakeCashRepo{cash: &entity.CashRegister{ID: 1, Capital: d("100")}})

	check, err := uc.Execute(context.Background(), d("120"))
	require.NoError(t, err)

	assert.False(t, check.Sufficient)
	assert.True(t, check.Difference.Equal(d("-20")), "diferencia = 100-120 = -20, fue %s", check.Difference)
	assert.True(t, check.Available.Equal(d("100")))
	assert.True(t, check.Required.Equal(d("120")))
}

// Capital exactamente igual al costo → suficiente con diferencia cero.
func TestBudget_CapitalExacto(t *testing.T) {
	uc := NewBudgetUseCase(&fakeCashRepo{cash: &entity.CashRegister{ID: 3, Capital: d("75.50")}})

	check, err := uc.Execute(context.Background(), d("75.50"))
	require.NoError(t, err)

	assert.True(t, check.Sufficient, "capital igual al requerido alcanza")
	assert.True(t, check.Difference.IsZero())
	assert.Equal(t, int64(3), check.CashRegisterID)
}
