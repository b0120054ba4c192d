package repository

import "github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"

// AgentRepository port de persistance des délégués commerciaux.
type AgentRepository interface {
	Create(agent *entity.CommercialAgent) error
	GetByID(id string) (*entity.CommercialAgent, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.CommercialAgent, error)
	Update(agent *entity.CommercialAgent) error
	Delete(id string) error
}
