package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/registration"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

var _ registration.DocumentStore = (*TxRunner)(nil)

// TxRunner exécute la promotion du brouillon de pièces dans une transaction
// PostgreSQL: soit toutes les lignes documents sont insérées, soit aucune.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// CreateBatch insère le lot de pièces, une ligne par libellé, Commit ou
// Rollback en bloc.
func (r *TxRunner) CreateBatch(ctx context.Context, docs []*entity.Document) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	docRepo := NewDocumentRepository(tx)
	for _, doc := range docs {
		if err := docRepo.Create(doc); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
