package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

// querier sous-ensemble commun à *pgxpool.Pool et pgx.Tx, pour que les
// repos fonctionnent aussi bien sur le pool que dans une transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implémentation du port DocumentRepository sur PostgreSQL.
type DocumentRepo struct {
	q querier
}

// NewDocumentRepository construit l'adaptateur de persistance des pièces.
// Accepte le pool ou une transaction en cours.
func NewDocumentRepository(q querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, user_id, document_type, file_name, status, uploaded_at, reviewed_at`

// Create persiste une pièce justificative.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.UserID, doc.DocumentType, doc.FileName, doc.Status, doc.UploadedAt, doc.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID lit une pièce par id, (nil, nil) si absente.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	var d entity.Document
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.UserID, &d.DocumentType, &d.FileName, &d.Status, &d.UploadedAt, &d.ReviewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListByUser liste les pièces d'un propriétaire, plus récentes d'abord.
func (r *DocumentRepo) ListByUser(userID string) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1 ORDER BY uploaded_at DESC`
	return r.list(query, userID)
}

// ListByStatus liste les pièces par statut avec pagination (file de revue).
func (r *DocumentRepo) ListByStatus(status string, limit, offset int) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE status = $1 ORDER BY uploaded_at ASC LIMIT $2 OFFSET $3`
	return r.list(query, status, limit, offset)
}

func (r *DocumentRepo) list(query string, args ...any) ([]*entity.Document, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.DocumentType, &d.FileName, &d.Status, &d.UploadedAt, &d.ReviewedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateStatus applique une décision de revue.
func (r *DocumentRepo) UpdateStatus(id, status string, reviewedAt time.Time) error {
	query := `UPDATE documents SET status = $2, reviewed_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, reviewedAt)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return nil
}
