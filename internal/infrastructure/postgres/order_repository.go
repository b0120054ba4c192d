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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implémentation du port OrderRepository sur PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construit l'adaptateur de persistance des commandes.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, pharmacy_id, supplier_id, product_id, quantity, unit_price, total, status, created_at, updated_at`

// Create persiste une nouvelle commande.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		order.ID, order.PharmacyID, order.SupplierID, order.ProductID, order.Quantity,
		order.UnitPrice, order.Total, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID lit une commande par id, (nil, nil) si absente.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.PharmacyID, &o.SupplierID, &o.ProductID, &o.Quantity,
		&o.UnitPrice, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByPharmacy liste les commandes passées par une pharmacie.
func (r *OrderRepo) ListByPharmacy(pharmacyID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE pharmacy_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, pharmacyID, limit, offset)
}

// ListBySupplier liste les commandes reçues par un fournisseur.
func (r *OrderRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE supplier_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, supplierID, limit, offset)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.PharmacyID, &o.SupplierID, &o.ProductID, &o.Quantity,
			&o.UnitPrice, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update met à jour une commande (statut).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, order.ID, order.Status, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}
