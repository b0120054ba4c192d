package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

// AgentUseCase CRUD des délégués commerciaux d'un fournisseur.
type AgentUseCase struct {
	repo repository.AgentRepository
}

// NewAgentUseCase construit le cas d'usage.
func NewAgentUseCase(repo repository.AgentRepository) *AgentUseCase {
	return &AgentUseCase{repo: repo}
}

// Create ajoute un délégué pour le fournisseur appelant.
func (uc *AgentUseCase) Create(supplierID string, in dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	if in.FullName == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	agent := &entity.CommercialAgent{
		ID:         uuid.New().String(),
		SupplierID: supplierID,
		FullName:   in.FullName,
		Phone:      in.Phone,
		Email:      in.Email,
		Region:     in.Region,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(agent); err != nil {
		return nil, err
	}
	return dto.ToAgentResponse(agent), nil
}

// Update met à jour un délégué, réservé au fournisseur propriétaire.
func (uc *AgentUseCase) Update(supplierID, id string, in dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	agent, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, nil
	}
	if agent.SupplierID != supplierID {
		return nil, domain.ErrForbidden
	}
	if in.FullName != nil {
		agent.FullName = *in.FullName
	}
	if in.Phone != nil {
		agent.Phone = *in.Phone
	}
	if in.Email != nil {
		agent.Email = *in.Email
	}
	if in.Region != nil {
		agent.Region = *in.Region
	}
	agent.UpdatedAt = time.Now()
	if err := uc.repo.Update(agent); err != nil {
		return nil, err
	}
	return dto.ToAgentResponse(agent), nil
}

// ListBySupplier liste les délégués d'un fournisseur.
func (uc *AgentUseCase) ListBySupplier(supplierID string, limit, offset int) (*dto.AgentListResponse, error) {
	list, err := uc.repo.ListBySupplier(supplierID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AgentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *dto.ToAgentResponse(a))
	}
	return &dto.AgentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete supprime un délégué, réservé au fournisseur propriétaire.
func (uc *AgentUseCase) Delete(supplierID, id string) error {
	agent, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if agent == nil {
		return domain.ErrNotFound
	}
	if agent.SupplierID != supplierID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}
