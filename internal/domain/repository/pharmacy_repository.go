package repository

import "github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"

// PharmacyRepository port de persistance des profils pharmacies.
type PharmacyRepository interface {
	Create(pharmacy *entity.Pharmacy) error
	GetByID(id string) (*entity.Pharmacy, error)
	GetByLicenseNumber(licenseNumber string) (*entity.Pharmacy, error)
	SetVerified(id string, verified bool) error
	List(limit, offset int) ([]*entity.Pharmacy, error)
}
