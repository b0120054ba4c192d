package repository

import "github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"

// OrderRepository port de persistance des commandes.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByPharmacy(pharmacyID string, limit, offset int) ([]*entity.Order, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.Order, error)
	Update(order *entity.Order) error
}
