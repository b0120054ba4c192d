package repository

import "github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"

// ProductRepository port de persistance du catalogue produits.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
