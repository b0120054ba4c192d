package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implémentation du port ReviewRepository sur PostgreSQL.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

// NewReviewRepository construit l'adaptateur de persistance des avis.
func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

const reviewColumns = `id, supplier_id, pharmacy_id, rating, comment, created_at`

// Create persiste un avis. La contrainte unique (pharmacy_id, supplier_id)
// garantit un seul avis par couple.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (` + reviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		review.ID, review.SupplierID, review.PharmacyID, review.Rating, review.Comment, review.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByPharmacyAndSupplier lit l'avis d'une pharmacie sur un fournisseur,
// (nil, nil) si absent.
func (r *ReviewRepo) GetByPharmacyAndSupplier(pharmacyID, supplierID string) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE pharmacy_id = $1 AND supplier_id = $2`
	var rv entity.Review
	err := r.pool.QueryRow(context.Background(), query, pharmacyID, supplierID).Scan(
		&rv.ID, &rv.SupplierID, &rv.PharmacyID, &rv.Rating, &rv.Comment, &rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &rv, nil
}

// ListBySupplier liste les avis reçus par un fournisseur.
func (r *ReviewRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE supplier_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.SupplierID, &rv.PharmacyID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}
