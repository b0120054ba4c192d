package repository

import (
	"github.com/shopspring/decimal"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// SupplierRepository port de persistance des profils fournisseurs.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByRegistryNumber(registryNumber string) (*entity.Supplier, error)
	SetVerified(id string, verified bool) error
	// UpdateRating remplace l'agrégat (moyenne, total) calculé par le module des avis.
	UpdateRating(id string, average decimal.Decimal, total int) error
	List(limit, offset int) ([]*entity.Supplier, error)
}
