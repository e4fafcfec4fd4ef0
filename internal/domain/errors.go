package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNoCashRegister     = errors.New("no hay caja configurada en el sistema")
	ErrOrderStatusMissing = errors.New("estado 'Pendiente' no encontrado; debe crearse primero")
)

// NoSupplierError indica que una materia prima no tiene ningún proveedor registrado.
type NoSupplierError struct {
	MaterialID int64
}

func (e *NoSupplierError) Error() string {
	return fmt.Sprintf("no hay proveedor para materia prima ID %d", e.MaterialID)
}

// InsufficientFundsError indica que la caja no cubre el costo de la orden.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("fondos insuficientes. Disponible: %s, Requerido: %s", e.Available, e.Required)
}
