package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implémentation du port SupplierRepository sur PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construit l'adaptateur de persistance des fournisseurs.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

const supplierColumns = `id, company_name, registry_number, phone, address, email,
	is_verified, average_rating, total_reviews, created_at, updated_at`

// Create persiste un nouveau profil fournisseur. La contrainte violée
// distingue email et numéro de registre.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyName, supplier.RegistryNumber, supplier.Phone,
		supplier.Address, supplier.Email, supplier.IsVerified, supplier.AverageRating,
		supplier.TotalReviews, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if c := uniqueConstraint(err); c != "" {
			if strings.Contains(c, "registry") {
				return domain.ErrRegistryNumberExists
			}
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID lit un fournisseur par id, (nil, nil) si absent.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.get(`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
}

// GetByRegistryNumber lit un fournisseur par numéro de registre.
func (r *SupplierRepo) GetByRegistryNumber(registryNumber string) (*entity.Supplier, error) {
	return r.get(`SELECT `+supplierColumns+` FROM suppliers WHERE registry_number = $1`, registryNumber)
}

func (r *SupplierRepo) get(query string, arg any) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.CompanyName, &s.RegistryNumber, &s.Phone, &s.Address, &s.Email,
		&s.IsVerified, &s.AverageRating, &s.TotalReviews, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// SetVerified bascule le drapeau de vérification (admin uniquement).
func (r *SupplierRepo) SetVerified(id string, verified bool) error {
	query := `UPDATE suppliers SET is_verified = $2, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, id, verified)
	if err != nil {
		return fmt.Errorf("set supplier verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateRating remplace l'agrégat (moyenne, total) des avis.
func (r *SupplierRepo) UpdateRating(id string, average decimal.Decimal, total int) error {
	query := `UPDATE suppliers SET average_rating = $2, total_reviews = $3, updated_at = now() WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, average, total)
	if err != nil {
		return fmt.Errorf("update supplier rating: %w", err)
	}
	return nil
}

// List liste les fournisseurs avec pagination.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyName, &s.RegistryNumber, &s.Phone, &s.Address, &s.Email,
			&s.IsVerified, &s.AverageRating, &s.TotalReviews, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
