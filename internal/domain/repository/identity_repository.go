package repository

import "github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"

// IdentityRepository port de persistance des identifiants (table users).
// L'implémentation vit dans infrastructure.
type IdentityRepository interface {
	Create(identity *entity.Identity) error
	GetByID(id string) (*entity.Identity, error)
	GetByEmail(email string) (*entity.Identity, error)
}
