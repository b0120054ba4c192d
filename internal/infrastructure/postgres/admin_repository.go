package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implémentation du port AdminRepository sur PostgreSQL.
type AdminRepo struct {
	pool *pgxpool.Pool
}

// NewAdminRepository construit l'adaptateur de lecture des admins.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// GetByID lit l'appartenance admin d'un compte, (nil, nil) si absente.
func (r *AdminRepo) GetByID(id string) (*entity.AdminUser, error) {
	query := `SELECT id, email, created_at FROM admin_users WHERE id = $1`
	var a entity.AdminUser
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&a.ID, &a.Email, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}
