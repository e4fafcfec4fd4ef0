package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/compras-mcp/internal/domain/entity"
	"github.com/tu-usuario/compras-mcp/internal/domain/repository"
)

var _ repository.CashRepository = (*CashRepo)(nil)

// CashRepo implementación del puerto CashRepository sobre PostgreSQL (usable con pool o tx).
type CashRepo struct {
	q Querier
}

// NewCashRepository construye el adaptador de persistencia para la caja.
func NewCashRepository(q Querier) *CashRepo {
	return &CashRepo{q: q}
}

// GetFirst devuelve la primera caja por idCaja. Devuelve (nil, nil) si no hay ninguna.
// Si hay varias filas solo la primera es autoritativa.
func (r *CashRepo) GetFirst() (*entity.CashRegister, error) {
	var c entity.CashRegister
	err := r.q.QueryRow(context.Background(),
		`SELECT idCaja, capital FROM caja ORDER BY idCaja LIMIT 1`,
	).Scan(&c.ID, &c.Capital)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get caja: %w", err)
	}
	return &c, nil
}
