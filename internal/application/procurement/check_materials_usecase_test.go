package procurement

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/compras-mcp/internal/domain"
	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
)

func newCheckMaterialsUC(products map[int64]*entity.Product, materials map[int64][]materialDef) *CheckMaterialsUseCase {
	return NewCheckMaterialsUseCase(
		&fakeProductRepo{products: products},
		&fakeMaterialRepo{byProduct: materials},
	)
}

// Cantidad cero o negativa → entrada inválida, sin tocar la BD.
func TestCheckMaterials_CantidadInvalida(t *testing.T) {
	uc := newCheckMaterialsUC(nil, nil)

	_, err := uc.Execute(context.Background(), 1, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), 1, d("-3"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Producto inexistente → ErrNotFound.
func TestCheckMaterials_ProductoNoExiste(t *testing.T) {
	uc := newCheckMaterialsUC(map[int64]*entity.Product{}, nil)

	_, err := uc.Execute(context.Background(), 99, d("1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Ejemplo de referencia: P con A (necesita 10, stock 4 → faltan 6) y
// B (necesita 5, stock 5 → faltante 0). Una entrada por materia, incluidas
// las que no tienen faltante, y puedeProducir falso.
func TestCheckMaterials_FaltantePorMateria(t *testing.T) {
	uc := newCheckMaterialsUC(
		map[int64]*entity.Product{1: {ID: 1, Name: "Mesa"}},
		map[int64][]materialDef{1: {
			{id: 10, name: "Madera", perUnit: d("10"), stock: d("4")},
			{id: 11, name: "Tornillos", perUnit: d("5"), stock: d("5")},
		}},
	)

	check, err := uc.Execute(context.Background(), 1, d("1"))
	require.NoError(t, err)

	assert.Equal(t, "Mesa", check.ProductName)
	assert.False(t, check.CanProduce)
	require.Len(t, check.Materials, 2)

	madera := check.Materials[0]
	assert.Equal(t, int64(10), madera.MaterialID)
	assert.True(t, madera.QuantityNeeded.Equal(d("10")), "necesaria = 10, fue %s", madera.QuantityNeeded)
	assert.True(t, madera.Shortfall.Equal(d("6")), "faltante = 10-4 = 6, fue %s", madera.Shortfall)

	tornillos := check.Materials[1]
	assert.True(t, tornillos.Shortfall.IsZero(), "faltante de tornillos debe ser 0")
}

// El faltante escala con la cantidad solicitada y nunca es negativo.
func TestCheckMaterials_FaltanteEscalaConCantidad(t *testing.T) {
	uc := newCheckMaterialsUC(
		map[int64]*entity.Product{1: {ID: 1, Name: "Mesa"}},
		map[int64][]materialDef{1: {
			{id: 10, name: "Madera", perUnit: d("2"), stock: d("100")},
		}},
	)

	check, err := uc.Execute(context.Background(), 1, d("3"))
	require.NoError(t, err)
	assert.True(t, check.CanProduce)
	assert.True(t, check.Materials[0].Shortfall.IsZero(),
		"stock 100 cubre 6 necesarias; faltante debe ser 0, no negativo")

	check, err = uc.Execute(context.Background(), 1, d("60"))
	require.NoError(t, err)
	assert.False(t, check.CanProduce)
	assert.True(t, check.Materials[0].Shortfall.Equal(d("20")), "faltante = 120-100 = 20")
}

// Producto sin materias ligadas: lista vacía y puedeProducir verdadero.
func TestCheckMaterials_SinMaterias(t *testing.T) {
	uc := newCheckMaterialsUC(
		map[int64]*entity.Product{1: {ID: 1, Name: "Servicio"}},
		map[int64][]materialDef{},
	)

	check, err := uc.Execute(context.Background(), 1, d("5"))
	require.NoError(t, err)
	assert.Empty(t, check.Materials)
	assert.True(t, check.CanProduce)
}
