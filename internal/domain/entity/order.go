package entity

import "github.com/shopspring/decimal"

// OrderStatus representa un estado de orden de compra (dato de referencia,
// debe existir previamente; el motor nunca lo crea).
type OrderStatus struct {
	ID   int64
	Name string
}

// StatusPending es el nombre del estado inicial de toda orden de compra.
const StatusPending = "Pendiente"

// PurchaseOrder representa la cabecera de una orden de compra.
// Se crea únicamente vía CreateOrderUseCase, de forma atómica con sus líneas.
type PurchaseOrder struct {
	ID        int64 // asignado por la BD al insertar
	StatusID  int64
	TotalCost decimal.Decimal // recalculado siempre desde ofertas vigentes
	UserID    int64
}

// OrderLine representa una línea de la orden (materia prima + cantidad).
type OrderLine struct {
	OrderID    int64
	MaterialID int64
	Quantity   decimal.Decimal
}
