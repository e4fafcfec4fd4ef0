package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tu-usuario/compras-mcp/internal/application/procurement"
	"github.com/tu-usuario/compras-mcp/internal/infrastructure/postgres"
	mcpserver "github.com/tu-usuario/compras-mcp/internal/interfaces/mcp"
	"github.com/tu-usuario/compras-mcp/pkg/config"
	"github.com/tu-usuario/compras-mcp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando servidor MCP")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	cashRepo := postgres.NewCashRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	checkMaterialsUC := procurement.NewCheckMaterialsUseCase(productRepo, materialRepo)
	sourcingUC := procurement.NewSourcingUseCase(checkMaterialsUC, supplierRepo)
	budgetUC := procurement.NewBudgetUseCase(cashRepo)
	createOrderUC := procurement.NewCreateOrderUseCase(txRunner)

	server := mcpserver.NewServer(mcpserver.Deps{
		CheckMaterials: checkMaterialsUC,
		Sourcing:       sourcingUC,
		Budget:         budgetUC,
		CreateOrder:    createOrderUC,
		Log:            log,
	})

	log.Info().Msg("servidor MCP escuchando por stdio")
	if err := mcpserver.Run(ctx, server); err != nil {
		log.Fatal().Err(err).Msg("servidor MCP finalizado")
	}

	log.Info().Msg("servidor detenido")
}
