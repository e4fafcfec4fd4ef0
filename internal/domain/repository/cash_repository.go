package repository

import "github.com/tu-usuario/compras-mcp/internal/domain/entity"

// CashRepository define el puerto de persistencia para la caja.
type CashRepository interface {
	// GetFirst devuelve la caja autoritativa (primera por idCaja).
	// Devuelve (nil, nil) si no hay ninguna configurada.
	GetFirst() (*entity.CashRegister, error)
}
