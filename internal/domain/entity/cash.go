package entity

import "github.com/shopspring/decimal"

// CashRegister representa la caja de la empresa.
// Si existen varias filas, la autoritativa es la primera por idCaja.
type CashRegister struct {
	ID      int64
	Capital decimal.Decimal
}
