package repository

import "github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"

// ReviewRepository port de persistance des avis.
type ReviewRepository interface {
	Create(review *entity.Review) error
	GetByPharmacyAndSupplier(pharmacyID, supplierID string) (*entity.Review, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.Review, error)
}
