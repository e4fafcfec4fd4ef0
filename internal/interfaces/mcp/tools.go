package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/compras-mcp/internal/application/procurement"
	"github.com/tu-usuario/compras-mcp/internal/domain"
	"github.com/tu-usuario/compras-mcp/pkg/logger"
)

// Puertos hacia la capa de aplicación (un método por herramienta).
type (
	// MaterialChecker verifica disponibilidad de materia prima.
	MaterialChecker interface {
		Execute(ctx context.Context, productID int64, quantity decimal.Decimal) (*procurement.MaterialCheck, error)
	}
	// SourcingPlanner genera las dos estrategias de compra.
	SourcingPlanner interface {
		Execute(ctx context.Context, productID int64, quantity decimal.Decimal) (*procurement.SourcingOptions, error)
	}
	// BudgetValidator valida el presupuesto en caja.
	BudgetValidator interface {
		Execute(ctx context.Context, required decimal.Decimal) (*procurement.BudgetCheck, error)
	}
	// OrderCreator crea la orden de compra transaccional.
	OrderCreator interface {
		Execute(ctx context.Context, userID int64, lines []procurement.OrderLineInput) (*procurement.OrderCreated, error)
	}
)

// ── verificar_materiales_producto ─────────────────────────────────────────────

// CheckMaterialsInput entrada de la herramienta de verificación de materiales.
type CheckMaterialsInput struct {
	ProductID int64   `json:"productId" jsonschema:"ID del producto a fabricar"`
	Quantity  float64 `json:"cantidad" jsonschema:"cantidad de productos a fabricar"`
}

// MaterialStatus estado de una materia prima requerida.
type MaterialStatus struct {
	MaterialID     int64   `json:"idMateriaPrima" jsonschema:"ID de la materia prima"`
	Name           string  `json:"nombre" jsonschema:"nombre de la materia prima"`
	QuantityNeeded float64 `json:"cantidadNecesaria" jsonschema:"cantidad total necesaria"`
	CurrentStock   float64 `json:"stockActual" jsonschema:"stock actual"`
	Shortfall      float64 `json:"faltante" jsonschema:"cantidad faltante (0 si alcanza)"`
}

// CheckMaterialsResult salida de la verificación de materiales.
type CheckMaterialsResult struct {
	Product           string           `json:"producto" jsonschema:"nombre del producto"`
	RequestedQuantity float64          `json:"cantidadSolicitada" jsonschema:"cantidad solicitada"`
	Materials         []MaterialStatus `json:"materialesRequeridos" jsonschema:"estado de cada materia prima"`
	CanProduce        bool             `json:"puedeProducir" jsonschema:"si el stock cubre toda la producción"`
}

// CheckMaterialsTool define el esquema MCP de la verificación de materiales.
func CheckMaterialsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "verificar_materiales_producto",
		Description: "Verifica si hay suficiente materia prima para fabricar una cantidad específica de un producto",
	}
}

// CheckMaterialsHandler ejecuta la verificación de materiales.
func CheckMaterialsHandler(uc MaterialChecker, log *logger.Logger) mcp.ToolHandlerFor[CheckMaterialsInput, CheckMaterialsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckMaterialsInput) (*mcp.CallToolResult, CheckMaterialsResult, error) {
		done := logInvocation(log, "verificar_materiales_producto")

		check, err := uc.Execute(ctx, input.ProductID, decimal.NewFromFloat(input.Quantity))
		if err != nil {
			done(err)
			return nil, CheckMaterialsResult{}, checkMaterialsError(err, input.ProductID)
		}

		materials := make([]MaterialStatus, 0, len(check.Materials))
		for _, m := range check.Materials {
			materials = append(materials, MaterialStatus{
				MaterialID:     m.MaterialID,
				Name:           m.Name,
				QuantityNeeded: m.QuantityNeeded.InexactFloat64(),
				CurrentStock:   m.CurrentStock.InexactFloat64(),
				Shortfall:      m.Shortfall.InexactFloat64(),
			})
		}

		done(nil)
		return nil, CheckMaterialsResult{
			Product:           check.ProductName,
			RequestedQuantity: check.RequestedQuantity.InexactFloat64(),
			Materials:         materials,
			CanProduce:        check.CanProduce,
		}, nil
	}
}

// ── generar_opciones_orden_compra ─────────────────────────────────────────────

// SourcingInput entrada de la generación de opciones de compra.
type SourcingInput struct {
	ProductID int64   `json:"productId" jsonschema:"ID del producto"`
	Quantity  float64 `json:"cantidad" jsonschema:"cantidad de productos a fabricar"`
}

// ShortfallItem materia prima faltante resumida.
type ShortfallItem struct {
	MaterialID int64   `json:"idMateriaPrima" jsonschema:"ID de la materia prima"`
	Name       string  `json:"nombre" jsonschema:"nombre de la materia prima"`
	Quantity   float64 `json:"cantidadFaltante" jsonschema:"cantidad faltante a comprar"`
}

// SingleSupplierOption estrategia 1: un proveedor para todo.
type SingleSupplierOption struct {
	SupplierID int64   `json:"idProveedor" jsonschema:"nit del proveedor"`
	Name       string  `json:"nombre" jsonschema:"nombre del proveedor"`
	TotalCost  float64 `json:"costoTotal" jsonschema:"costo total de surtir todos los faltantes"`
}

// SupplierOrderLine materia asignada dentro de una orden sugerida.
type SupplierOrderLine struct {
	MaterialID int64   `json:"idMateriaPrima" jsonschema:"ID de la materia prima"`
	Name       string  `json:"nombre" jsonschema:"nombre de la materia prima"`
	Quantity   float64 `json:"cantidad" jsonschema:"cantidad a comprar"`
	UnitCost   float64 `json:"costoUnidad" jsonschema:"costo unitario"`
	TotalCost  float64 `json:"costoTotal" jsonschema:"costo de la línea"`
}

// SupplierOrderOption orden sugerida para un proveedor (estrategia 2).
type SupplierOrderOption struct {
	SupplierID int64               `json:"idProveedor" jsonschema:"nit del proveedor"`
	Name       string              `json:"nombre" jsonschema:"nombre del proveedor"`
	Materials  []SupplierOrderLine `json:"materiales" jsonschema:"materias asignadas a este proveedor"`
	TotalCost  float64             `json:"costoTotal" jsonschema:"costo de esta orden"`
}

// OptimalPlanOption estrategia 2: óptimo por materia, agrupado por proveedor.
type OptimalPlanOption struct {
	Orders    []SupplierOrderOption `json:"ordenes" jsonschema:"órdenes sugeridas por proveedor"`
	TotalCost float64               `json:"costoTotal" jsonschema:"costo total de la estrategia"`
}

// SourcingResult salida de la generación de opciones.
// Si RequiereCompra es falso no se generan estrategias.
type SourcingResult struct {
	PurchaseNeeded bool                  `json:"requiereCompra" jsonschema:"si hay materiales faltantes que comprar"`
	Message        string                `json:"mensaje,omitempty" jsonschema:"mensaje cuando no se requiere compra"`
	Shortfalls     []ShortfallItem       `json:"materialesFaltantes,omitempty" jsonschema:"materias faltantes"`
	SingleSupplier *SingleSupplierOption `json:"proveedorUnico,omitempty" jsonschema:"estrategia de un solo proveedor, si existe"`
	OptimalPlan    *OptimalPlanOption    `json:"optimoPorMaterial,omitempty" jsonschema:"estrategia de proveedor óptimo por materia"`
}

// SourcingTool define el esquema MCP de la generación de opciones de compra.
func SourcingTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generar_opciones_orden_compra",
		Description: "Genera opciones de órdenes de compra para materiales faltantes (un proveedor vs óptimo por material)",
	}
}

// SourcingHandler ejecuta la generación de opciones de compra.
func SourcingHandler(uc SourcingPlanner, log *logger.Logger) mcp.ToolHandlerFor[SourcingInput, SourcingResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SourcingInput) (*mcp.CallToolResult, SourcingResult, error) {
		done := logInvocation(log, "generar_opciones_orden_compra")

		options, err := uc.Execute(ctx, input.ProductID, decimal.NewFromFloat(input.Quantity))
		if err != nil {
			done(err)
			return nil, SourcingResult{}, checkMaterialsError(err, input.ProductID)
		}

		done(nil)
		if !options.PurchaseNeeded {
			return nil, SourcingResult{
				PurchaseNeeded: false,
				Message:        "No hay materiales faltantes. La producción puede proceder.",
			}, nil
		}

		result := SourcingResult{PurchaseNeeded: true}
		for _, s := range options.Shortfalls {
			result.Shortfalls = append(result.Shortfalls, ShortfallItem{
				MaterialID: s.MaterialID,
				Name:       s.Name,
				Quantity:   s.Quantity.InexactFloat64(),
			})
		}
		if options.SingleSupplier != nil {
			result.SingleSupplier = &SingleSupplierOption{
				SupplierID: options.SingleSupplier.SupplierID,
				Name:       options.SingleSupplier.SupplierName,
				TotalCost:  options.SingleSupplier.TotalCost.InexactFloat64(),
			}
		}
		if options.PerMaterial != nil {
			plan := &OptimalPlanOption{TotalCost: options.PerMaterial.TotalCost.InexactFloat64()}
			for _, g := range options.PerMaterial.Groups {
				order := SupplierOrderOption{
					SupplierID: g.SupplierID,
					Name:       g.SupplierName,
					TotalCost:  g.TotalCost.InexactFloat64(),
				}
				for _, line := range g.Lines {
					order.Materials = append(order.Materials, SupplierOrderLine{
						MaterialID: line.MaterialID,
						Name:       line.Name,
						Quantity:   line.Quantity.InexactFloat64(),
						UnitCost:   line.UnitCost.InexactFloat64(),
						TotalCost:  line.TotalCost.InexactFloat64(),
					})
				}
				plan.Orders = append(plan.Orders, order)
			}
			result.OptimalPlan = plan
		}
		return nil, result, nil
	}
}

// ── validar_presupuesto_caja ──────────────────────────────────────────────────

// BudgetInput entrada de la validación de presupuesto.
type BudgetInput struct {
	TotalCost float64 `json:"costoTotal" jsonschema:"costo total de la orden de compra"`
}

// BudgetResult salida de la validación de presupuesto.
type BudgetResult struct {
	CashRegisterID int64   `json:"idCaja" jsonschema:"ID de la caja consultada"`
	Available      float64 `json:"capitalDisponible" jsonschema:"capital disponible en caja"`
	Required       float64 `json:"costoRequerido" jsonschema:"costo requerido"`
	Sufficient     bool    `json:"hayFondosSuficientes" jsonschema:"si el capital cubre el costo"`
	Difference     float64 `json:"diferencia" jsonschema:"capital menos costo (negativa si falta)"`
}

// BudgetTool define el esquema MCP de la validación de presupuesto.
func BudgetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "validar_presupuesto_caja",
		Description: "Valida si hay suficiente dinero en caja para cubrir el costo de una orden de compra",
	}
}

// BudgetHandler ejecuta la validación de presupuesto.
func BudgetHandler(uc BudgetValidator, log *logger.Logger) mcp.ToolHandlerFor[BudgetInput, BudgetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BudgetInput) (*mcp.CallToolResult, BudgetResult, error) {
		done := logInvocation(log, "validar_presupuesto_caja")

		check, err := uc.Execute(ctx, decimal.NewFromFloat(input.TotalCost))
		if err != nil {
			done(err)
			return nil, BudgetResult{}, domainError(err)
		}

		done(nil)
		return nil, BudgetResult{
			CashRegisterID: check.CashRegisterID,
			Available:      check.Available.InexactFloat64(),
			Required:       check.Required.InexactFloat64(),
			Sufficient:     check.Sufficient,
			Difference:     check.Difference.InexactFloat64(),
		}, nil
	}
}

// ── crear_orden_compra ────────────────────────────────────────────────────────

// OrderLineInput línea solicitada en la creación de la orden.
type OrderLineInput struct {
	MaterialID int64   `json:"materiaPrimaId" jsonschema:"ID de la materia prima"`
	Quantity   float64 `json:"cantidad" jsonschema:"cantidad a comprar"`
}

// CreateOrderInput entrada de la creación de orden de compra.
type CreateOrderInput struct {
	UserID    int64            `json:"usuarioId" jsonschema:"ID del usuario que crea la orden"`
	Materials []OrderLineInput `json:"materiales" jsonschema:"materiales con sus cantidades"`
}

// CreateOrderResult salida de la creación de orden de compra.
type CreateOrderResult struct {
	Success   bool    `json:"success" jsonschema:"si la orden fue creada"`
	OrderID   int64   `json:"ordenId" jsonschema:"ID asignado a la orden"`
	TotalCost float64 `json:"costoTotal" jsonschema:"costo total recalculado"`
	Message   string  `json:"mensaje" jsonschema:"mensaje descriptivo"`
}

// CreateOrderTool define el esquema MCP de la creación de orden de compra.
func CreateOrderTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "crear_orden_compra",
		Description: "Crea una orden de compra para materiales específicos con validación de presupuesto",
	}
}

// CreateOrderHandler ejecuta la creación transaccional de la orden.
func CreateOrderHandler(uc OrderCreator, log *logger.Logger) mcp.ToolHandlerFor[CreateOrderInput, CreateOrderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateOrderInput) (*mcp.CallToolResult, CreateOrderResult, error) {
		done := logInvocation(log, "crear_orden_compra")

		lines := make([]procurement.OrderLineInput, 0, len(input.Materials))
		for _, m := range input.Materials {
			lines = append(lines, procurement.OrderLineInput{
				MaterialID: m.MaterialID,
				Quantity:   decimal.NewFromFloat(m.Quantity),
			})
		}

		created, err := uc.Execute(ctx, input.UserID, lines)
		if err != nil {
			done(err)
			return nil, CreateOrderResult{}, fmt.Errorf("error al crear orden: %w", domainError(err))
		}

		done(nil)
		return nil, CreateOrderResult{
			Success:   true,
			OrderID:   created.OrderID,
			TotalCost: created.TotalCost.InexactFloat64(),
			Message:   "Orden de compra creada exitosamente",
		}, nil
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// logInvocation registra inicio y fin de una herramienta con trace id y duración.
// El error devuelto al host MCP se reporta como resultado de herramienta
// (IsError), nunca tumba el proceso.
func logInvocation(log *logger.Logger, tool string) func(error) {
	traceID := uuid.NewString()
	start := time.Now()
	log.Debug().Str("trace_id", traceID).Str("tool", tool).Msg("herramienta invocada")
	return func(err error) {
		event := log.Info()
		if err != nil {
			event = log.Warn().Err(err)
		}
		event.Str("trace_id", traceID).Str("tool", tool).
			Dur("duration", time.Since(start)).
			Msg("herramienta finalizada")
	}
}

// checkMaterialsError traduce errores de los casos de uso de lectura a los
// mensajes que ven los hosts, con el producto en contexto.
func checkMaterialsError(err error, productID int64) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("producto con ID %d no encontrado", productID)
	case errors.Is(err, domain.ErrInvalidInput):
		return errors.New("la cantidad debe ser mayor que cero")
	default:
		return err
	}
}

// domainError traduce errores de dominio sin contexto adicional.
func domainError(err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return errors.New("entrada inválida: revise usuario, materiales y cantidades")
	}
	return err
}
