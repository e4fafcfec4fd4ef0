package procurement

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

// SourcingUseCase genera opciones de órdenes de compra para los faltantes de
// un producto: un solo proveedor para todo vs el proveedor más barato por materia.
// Solo lectura, sin efectos.
type SourcingUseCase struct {
	checkMaterials *CheckMaterialsUseCase
	supplierRepo   repository.SupplierRepository
}

// NewSourcingUseCase construye el caso de uso reutilizando la verificación de materiales.
func NewSourcingUseCase(checkMaterials *CheckMaterialsUseCase, supplierRepo repository.SupplierRepository) *SourcingUseCase {
	return &SourcingUseCase{checkMaterials: checkMaterials, supplierRepo: supplierRepo}
}

// MaterialShortfall es una materia prima con faltante y sus ofertas vigentes,
// ordenadas por costo unitario ascendente. Offers puede estar vacía: esa
// materia descarta a todos los candidatos de la estrategia de proveedor único.
type MaterialShortfall struct {
	MaterialID int64
	Name       string
	Quantity   decimal.Decimal
	Offers     []*entity.SupplierOffer
}

// SingleSupplierPlan es la estrategia 1: un único proveedor que puede surtir
// todas las materias faltantes, el de menor costo total.
type SingleSupplierPlan struct {
	SupplierID   int64
	SupplierName string
	TotalCost    decimal.Decimal
}

// PlanLine es una materia asignada dentro de una orden sugerida.
type PlanLine struct {
	MaterialID int64
	Name       string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	TotalCost  decimal.Decimal
}

// SupplierGroup agrupa las materias asignadas a un mismo proveedor.
type SupplierGroup struct {
	SupplierID   int64
	SupplierName string
	Lines        []PlanLine
	TotalCost    decimal.Decimal
}

// PerMaterialPlan es la estrategia 2: para cada materia, su oferta más barata,
// agrupadas por proveedor. Su costo total es cota inferior del de cualquier
// proveedor único.
type PerMaterialPlan struct {
	Groups    []SupplierGroup
	TotalCost decimal.Decimal
}

// SourcingOptions es el resultado de la generación de opciones.
// Si no hay faltantes, PurchaseNeeded es falso y no se generan planes.
type SourcingOptions struct {
	ProductID      int64
	ProductName    string
	PurchaseNeeded bool
	Shortfalls     []MaterialShortfall
	SingleSupplier *SingleSupplierPlan // nil si ningún proveedor cubre todas las materias
	PerMaterial    *PerMaterialPlan    // nil si no hay compra necesaria
}

// Execute calcula los faltantes del producto y construye las dos estrategias.
func (uc *SourcingUseCase) Execute(ctx context.Context, productID int64, quantity decimal.Decimal) (*SourcingOptions, error) {
	check, err := uc.checkMaterials.Execute(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}

	shortfalls := make([]MaterialShortfall, 0, len(check.Materials))
	for _, m := range check.Materials {
		if !m.HasShortfall() {
			continue
		}
		offers, err := uc.supplierRepo.OffersForMaterial(m.MaterialID, m.Shortfall)
		if err != nil {
			return nil, err
		}
		shortfalls = append(shortfalls, MaterialShortfall{
			MaterialID: m.MaterialID,
			Name:       m.Name,
			Quantity:   m.Shortfall,
			Offers:     offers,
		})
	}

	if len(shortfalls) == 0 {
		return &SourcingOptions{
			ProductID:      check.ProductID,
			ProductName:    check.ProductName,
			PurchaseNeeded: false,
		}, nil
	}

	return &SourcingOptions{
		ProductID:      check.ProductID,
		ProductName:    check.ProductName,
		PurchaseNeeded: true,
		Shortfalls:     shortfalls,
		SingleSupplier: bestSingleSupplier(shortfalls),
		PerMaterial:    cheapestPerMaterial(shortfalls),
	}, nil
}

// bestSingleSupplier busca el proveedor de menor costo total entre los que
// ofrecen todas las materias faltantes. Los candidatos se recorren por nit
// ascendente y solo un total estrictamente menor desplaza al mejor actual,
// así el empate lo gana el nit más bajo (orden determinista).
func bestSingleSupplier(shortfalls []MaterialShortfall) *SingleSupplierPlan {
	names := make(map[int64]string)
	for _, s := range shortfalls {
		for _, o := range s.Offers {
			names[o.SupplierID] = o.SupplierName
		}
	}
	candidates := make([]int64, 0, len(names))
	for id := range names {
		candidates = append(candidates, id)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	var best *SingleSupplierPlan
	for _, id := range candidates {
		total := decimal.Zero
		coversAll := true
		for _, s := range shortfalls {
			offer := offerBySupplier(s.Offers, id)
			if offer == nil {
				coversAll = false
				break
			}
			total = total.Add(offer.TotalCost)
		}
		if !coversAll {
			continue
		}
		if best == nil || total.LessThan(best.TotalCost) {
			best = &SingleSupplierPlan{SupplierID: id, SupplierName: names[id], TotalCost: total}
		}
	}
	return best
}

// cheapestPerMaterial asigna a cada materia su oferta más barata (la primera,
// ya vienen ordenadas por costo unitario) y agrupa por proveedor. Las materias
// sin ofertas quedan fuera del plan; siguen visibles en Shortfalls.
func cheapestPerMaterial(shortfalls []MaterialShortfall) *PerMaterialPlan {
	groups := make(map[int64]*SupplierGroup)
	var order []int64
	total := decimal.Zero

	for _, s := range shortfalls {
		if len(s.Offers) == 0 {
			continue
		}
		best := s.Offers[0]
		group, ok := groups[best.SupplierID]
		if !ok {
			group = &SupplierGroup{SupplierID: best.SupplierID, SupplierName: best.SupplierName, TotalCost: decimal.Zero}
			groups[best.SupplierID] = group
			order = append(order, best.SupplierID)
		}
		group.Lines = append(group.Lines, PlanLine{
			MaterialID: s.MaterialID,
			Name:       s.Name,
			Quantity:   s.Quantity,
			UnitCost:   best.UnitCost,
			TotalCost:  best.TotalCost,
		})
		group.TotalCost = group.TotalCost.Add(best.TotalCost)
		total = total.Add(best.TotalCost)
	}

	plan := &PerMaterialPlan{TotalCost: total}
	for _, id := range order {
		plan.Groups = append(plan.Groups, *groups[id])
	}
	return plan
}

func offerBySupplier(offers []*entity.SupplierOffer, supplierID int64) *entity.SupplierOffer {
	for _, o := range offers {
		if o.SupplierID == supplierID {
			return o
		}
	}
	return nil
}
