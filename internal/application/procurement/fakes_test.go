package procurement

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. Replican el contrato de
// los adaptadores PostgreSQL: (nil, nil) para filas inexistentes, ofertas
// ordenadas por costo unitario y nit, faltante calculado con GREATEST.

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return f.products[id], nil
}

// materialDef define una materia ligada a un producto: requerimiento por unidad y stock.
type materialDef struct {
	id      int64
	name    string
	perUnit decimal.Decimal
	stock   decimal.Decimal
}

type fakeMaterialRepo struct {
	byProduct map[int64][]materialDef
}

func (f *fakeMaterialRepo) RequirementsForProduct(productID int64, quantity decimal.Decimal) ([]*entity.MaterialRequirement, error) {
	defs := f.byProduct[productID]
	list := make([]*entity.MaterialRequirement, 0, len(defs))
	for _, def := range defs {
		needed := def.perUnit.Mul(quantity)
		shortfall := needed.Sub(def.stock)
		if shortfall.IsNegative() {
			shortfall = decimal.Zero
		}
		list = append(list, &entity.MaterialRequirement{
			MaterialID:     def.id,
			Name:           def.name,
			QuantityNeeded: needed,
			CurrentStock:   def.stock,
			Shortfall:      shortfall,
		})
	}
	return list, nil
}

// offerDef define la oferta de un proveedor para una materia.
type offerDef struct {
	supplierID int64
	name       string
	unitCost   decimal.Decimal
}

type fakeSupplierRepo struct {
	byMaterial map[int64][]offerDef
}

func (f *fakeSupplierRepo) OffersForMaterial(materialID int64, quantity decimal.Decimal) ([]*entity.SupplierOffer, error) {
	defs := append([]offerDef(nil), f.byMaterial[materialID]...)
	sort.Slice(defs, func(i, j int) bool {
		if !defs[i].unitCost.Equal(defs[j].unitCost) {
			return defs[i].unitCost.LessThan(defs[j].unitCost)
		}
		return defs[i].supplierID < defs[j].supplierID
	})
	offers := make([]*entity.SupplierOffer, 0, len(defs))
	for _, def := range defs {
		offers = append(offers, &entity.SupplierOffer{
			SupplierID:   def.supplierID,
			SupplierName: def.name,
			UnitCost:     def.unitCost,
			TotalCost:    def.unitCost.Mul(quantity),
		})
	}
	return offers, nil
}

func (f *fakeSupplierRepo) CheapestOffer(materialID int64, quantity decimal.Decimal) (*entity.SupplierOffer, error) {
	offers, err := f.OffersForMaterial(materialID, quantity)
	if err != nil || len(offers) == 0 {
		return nil, err
	}
	return offers[0], nil
}

type fakeCashRepo struct {
	cash *entity.CashRegister
}

func (f *fakeCashRepo) GetFirst() (*entity.CashRegister, error) {
	return f.cash, nil
}

type fakeOrderRepo struct {
	statuses map[string]*entity.OrderStatus
	nextID   int64
	orders   []*entity.PurchaseOrder
	lines    []*entity.OrderLine
}

func (f *fakeOrderRepo) GetStatusByName(name string) (*entity.OrderStatus, error) {
	return f.statuses[name], nil
}

func (f *fakeOrderRepo) CreateOrder(order *entity.PurchaseOrder) error {
	f.nextID++
	order.ID = f.nextID
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) CreateLine(line *entity.OrderLine) error {
	f.lines = append(f.lines, line)
	return nil
}

// fakeTxRunner emula Commit/Rollback: si fn falla, descarta los writes
// acumulados en el repo de órdenes, como haría la transacción real.
type fakeTxRunner struct {
	suppliers *fakeSupplierRepo
	cash      *fakeCashRepo
	orders    *fakeOrderRepo

	commits   int
	rollbacks int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	cashRepo repository.CashRepository,
	orderRepo repository.OrderRepository,
) error) error {
	if err := fn(f.suppliers, f.cash, f.orders); err != nil {
		f.rollbacks++
		f.orders.orders = nil
		f.orders.lines = nil
		return err
	}
	f.commits++
	return nil
}
