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

var _ repository.IdentityRepository = (*IdentityRepo)(nil)

// IdentityRepo implémentation du port IdentityRepository sur PostgreSQL
// (table users).
type IdentityRepo struct {
	pool *pgxpool.Pool
}

// NewIdentityRepository construit l'adaptateur de persistance des identités.
func NewIdentityRepository(pool *pgxpool.Pool) *IdentityRepo {
	return &IdentityRepo{pool: pool}
}

// Create persiste une nouvelle identité.
func (r *IdentityRepo) Create(identity *entity.Identity) error {
	query := `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		identity.ID, identity.Email, identity.PasswordHash, identity.CreatedAt, identity.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID lit une identité par id, (nil, nil) si absente.
func (r *IdentityRepo) GetByID(id string) (*entity.Identity, error) {
	return r.get(`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`, id)
}

// GetByEmail lit une identité par email, (nil, nil) si absente.
func (r *IdentityRepo) GetByEmail(email string) (*entity.Identity, error) {
	return r.get(`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1 LIMIT 1`, email)
}

func (r *IdentityRepo) get(query string, arg any) (*entity.Identity, error) {
	var u entity.Identity
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
