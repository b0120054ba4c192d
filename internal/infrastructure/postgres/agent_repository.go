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

var _ repository.AgentRepository = (*AgentRepo)(nil)

// AgentRepo implémentation du port AgentRepository sur PostgreSQL.
type AgentRepo struct {
	pool *pgxpool.Pool
}

// NewAgentRepository construit l'adaptateur de persistance des délégués.
func NewAgentRepository(pool *pgxpool.Pool) *AgentRepo {
	return &AgentRepo{pool: pool}
}

const agentColumns = `id, supplier_id, full_name, phone, email, region, created_at, updated_at`

// Create persiste un délégué commercial.
func (r *AgentRepo) Create(agent *entity.CommercialAgent) error {
	query := `
		INSERT INTO commercial_agents (` + agentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		agent.ID, agent.SupplierID, agent.FullName, agent.Phone, agent.Email, agent.Region,
		agent.CreatedAt, agent.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

// GetByID lit un délégué par id, (nil, nil) si absent.
func (r *AgentRepo) GetByID(id string) (*entity.CommercialAgent, error) {
	query := `SELECT ` + agentColumns + ` FROM commercial_agents WHERE id = $1`
	var a entity.CommercialAgent
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.SupplierID, &a.FullName, &a.Phone, &a.Email, &a.Region, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return &a, nil
}

// ListBySupplier liste les délégués d'un fournisseur.
func (r *AgentRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.CommercialAgent, error) {
	query := `SELECT ` + agentColumns + ` FROM commercial_agents WHERE supplier_id = $1 ORDER BY full_name ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommercialAgent
	for rows.Next() {
		var a entity.CommercialAgent
		if err := rows.Scan(&a.ID, &a.SupplierID, &a.FullName, &a.Phone, &a.Email, &a.Region,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update met à jour un délégué.
func (r *AgentRepo) Update(agent *entity.CommercialAgent) error {
	query := `
		UPDATE commercial_agents SET full_name = $2, phone = $3, email = $4, region = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		agent.ID, agent.FullName, agent.Phone, agent.Email, agent.Region, agent.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agent: %w", err)
	}
	return nil
}

// Delete supprime un délégué par id.
func (r *AgentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM commercial_agents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	return nil
}
