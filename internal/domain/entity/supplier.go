package entity

import "github.com/shopspring/decimal"

// SupplierOffer representa la oferta de un proveedor para una materia prima.
// TotalCost = UnitCost × cantidad faltante de la materia prima consultada.
// El nombre es solo atributo de despliegue; toda agrupación se hace por SupplierID.
type SupplierOffer struct {
	SupplierID   int64 // nit del proveedor
	SupplierName string
	UnitCost     decimal.Decimal
	TotalCost    decimal.Decimal
}
