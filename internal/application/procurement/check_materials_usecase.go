package procurement

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/domain"
	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

// CheckMaterialsUseCase verifica si hay materia prima suficiente para fabricar
// una cantidad de producto. Solo lectura, sin efectos.
type CheckMaterialsUseCase struct {
	productRepo  repository.ProductRepository
	materialRepo repository.MaterialRepository
}

// NewCheckMaterialsUseCase construye el caso de uso.
func NewCheckMaterialsUseCase(productRepo repository.ProductRepository, materialRepo repository.MaterialRepository) *CheckMaterialsUseCase {
	return &CheckMaterialsUseCase{productRepo: productRepo, materialRepo: materialRepo}
}

// MaterialCheck es el resultado de la verificación de materiales.
// Incluye todas las materias ligadas al producto, también las que no tienen faltante.
type MaterialCheck struct {
	ProductID         int64
	ProductName       string
	RequestedQuantity decimal.Decimal
	Materials         []*entity.MaterialRequirement
	CanProduce        bool
}

// Execute calcula requerimientos, stock y faltantes por materia prima.
// CanProduce es verdadero sólo si ninguna materia tiene faltante.
func (uc *CheckMaterialsUseCase) Execute(ctx context.Context, productID int64, quantity decimal.Decimal) (*MaterialCheck, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	materials, err := uc.materialRepo.RequirementsForProduct(productID, quantity)
	if err != nil {
		return nil, err
	}

	canProduce := true
	for _, m := range materials {
		if m.HasShortfall() {
			canProduce = false
			break
		}
	}

	return &MaterialCheck{
		ProductID:         product.ID,
		ProductName:       product.Name,
		RequestedQuantity: quantity,
		Materials:         materials,
		CanProduce:        canProduce,
	}, nil
}
