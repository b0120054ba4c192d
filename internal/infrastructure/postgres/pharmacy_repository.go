package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

var _ repository.PharmacyRepository = (*PharmacyRepo)(nil)

// PharmacyRepo implémentation du port PharmacyRepository sur PostgreSQL.
type PharmacyRepo struct {
	pool *pgxpool.Pool
}

// NewPharmacyRepository construit l'adaptateur de persistance des pharmacies.
func NewPharmacyRepository(pool *pgxpool.Pool) *PharmacyRepo {
	return &PharmacyRepo{pool: pool}
}

const pharmacyColumns = `id, pharmacy_name, license_number, phone, address, email,
	is_verified, created_at, updated_at`

// Create persiste un nouveau profil pharmacie.
func (r *PharmacyRepo) Create(pharmacy *entity.Pharmacy) error {
	query := `
		INSERT INTO pharmacies (` + pharmacyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		pharmacy.ID, pharmacy.PharmacyName, pharmacy.LicenseNumber, pharmacy.Phone,
		pharmacy.Address, pharmacy.Email, pharmacy.IsVerified, pharmacy.CreatedAt, pharmacy.UpdatedAt,
	)
	if err != nil {
		if c := uniqueConstraint(err); c != "" {
			if strings.Contains(c, "license") {
				return domain.ErrLicenseNumberExists
			}
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert pharmacy: %w", err)
	}
	return nil
}

// GetByID lit une pharmacie par id, (nil, nil) si absente.
func (r *PharmacyRepo) GetByID(id string) (*entity.Pharmacy, error) {
	return r.get(`SELECT `+pharmacyColumns+` FROM pharmacies WHERE id = $1`, id)
}

// GetByLicenseNumber lit une pharmacie par numéro de licence.
func (r *PharmacyRepo) GetByLicenseNumber(licenseNumber string) (*entity.Pharmacy, error) {
	return r.get(`SELECT `+pharmacyColumns+` FROM pharmacies WHERE license_number = $1`, licenseNumber)
}

func (r *PharmacyRepo) get(query string, arg any) (*entity.Pharmacy, error) {
	var p entity.Pharmacy
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.PharmacyName, &p.LicenseNumber, &p.Phone, &p.Address, &p.Email,
		&p.IsVerified, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pharmacy: %w", err)
	}
	return &p, nil
}

// SetVerified bascule le drapeau de vérification (admin uniquement).
func (r *PharmacyRepo) SetVerified(id string, verified bool) error {
	query := `UPDATE pharmacies SET is_verified = $2, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, id, verified)
	if err != nil {
		return fmt.Errorf("set pharmacy verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List liste les pharmacies avec pagination.
func (r *PharmacyRepo) List(limit, offset int) ([]*entity.Pharmacy, error) {
	query := `SELECT ` + pharmacyColumns + ` FROM pharmacies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pharmacies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pharmacy
	for rows.Next() {
		var p entity.Pharmacy
		if err := rows.Scan(&p.ID, &p.PharmacyName, &p.LicenseNumber, &p.Phone, &p.Address, &p.Email,
			&p.IsVerified, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pharmacy: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
