package repository

import "github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"

// AdminRepository port de lecture de l'appartenance admin.
type AdminRepository interface {
	GetByID(id string) (*entity.AdminUser, error)
}
