package dto

import (
	"time"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// CreateAgentRequest entrée de création d'un délégué commercial.
type CreateAgentRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Region   string `json:"region"`
}

// UpdateAgentRequest entrée de mise à jour partielle.
type UpdateAgentRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Region   *string `json:"region"`
}

// AgentResponse sortie d'un délégué commercial.
type AgentResponse struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplier_id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Region     string    `json:"region"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AgentListResponse listage paginé.
type AgentListResponse struct {
	Items []AgentResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ToAgentResponse convertit l'entité en DTO.
func ToAgentResponse(a *entity.CommercialAgent) *AgentResponse {
	if a == nil {
		return nil
	}
	return &AgentResponse{
		ID:         a.ID,
		SupplierID: a.SupplierID,
		FullName:   a.FullName,
		Phone:      a.Phone,
		Email:      a.Email,
		Region:     a.Region,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
