package repository

import "github.com/tu-usuario/compras-mcp/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(id int64) (*entity.Product, error)
}
