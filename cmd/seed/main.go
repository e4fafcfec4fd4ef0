package main

import (
	"context"
	"os"

	"github.com/tu-usuario/compras-mcp/internal/infrastructure/postgres"
	"github.com/tu-usuario/compras-mcp/pkg/config"
	"github.com/tu-usuario/compras-mcp/pkg/logger"
)

// Aplica un archivo SQL contra la base configurada. Uso:
//
//	go run ./cmd/seed db/schema.sql
//
// Pensado para crear el esquema y los datos de referencia (estados de orden,
// caja inicial) que el motor de compras asume existentes.
func main() {
	if len(os.Args) < 2 {
		os.Stderr.WriteString("uso: seed <archivo.sql>\n")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	for _, path := range os.Args[1:] {
		sql, err := os.ReadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("archivo", path).Msg("leer archivo SQL")
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			log.Fatal().Err(err).Str("archivo", path).Msg("ejecutar archivo SQL")
		}
		log.Info().Str("archivo", path).Msg("archivo SQL aplicado")
	}
}
