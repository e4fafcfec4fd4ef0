package repository

import "github.com/tu-usuario/compras-mcp/internal/domain/entity"

// OrderRepository define el puerto de persistencia para órdenes de compra.
type OrderRepository interface {
	// GetStatusByName resuelve un estado por nombre. Devuelve (nil, nil) si no existe.
	GetStatusByName(name string) (*entity.OrderStatus, error)
	// CreateOrder inserta la cabecera y asigna order.ID con el id generado.
	CreateOrder(order *entity.PurchaseOrder) error
	// CreateLine inserta una línea referenciando la orden ya creada.
	CreateLine(line *entity.OrderLine) error
}
