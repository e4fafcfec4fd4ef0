package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tu-usuario/compras-mcp/pkg/logger"
)

const (
	serverName    = "inventory-management"
	serverVersion = "1.0.0"
)

// Deps agrupa los casos de uso que exponen las herramientas.
type Deps struct {
	CheckMaterials MaterialChecker
	Sourcing       SourcingPlanner
	Budget         BudgetValidator
	CreateOrder    OrderCreator
	Log            *logger.Logger
}

// NewServer construye el servidor MCP con las cuatro herramientas registradas.
func NewServer(deps Deps) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(server, CheckMaterialsTool(), CheckMaterialsHandler(deps.CheckMaterials, deps.Log))
	mcp.AddTool(server, SourcingTool(), SourcingHandler(deps.Sourcing, deps.Log))
	mcp.AddTool(server, BudgetTool(), BudgetHandler(deps.Budget, deps.Log))
	mcp.AddTool(server, CreateOrderTool(), CreateOrderHandler(deps.CreateOrder, deps.Log))

	return server
}

// Run atiende el protocolo por stdio hasta que el contexto se cancele.
// La cancelación por señal es un apagado limpio, no un error.
func Run(ctx context.Context, server *mcp.Server) error {
	err := server.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
