package session

import (
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

// Resolver résout le profil métier d'une identité. Sonde fournisseurs puis
// pharmacies puis admins; l'invariant d'exclusivité garantit qu'au plus une
// sonde répond. Le résultat est une union taguée, pas un couple (type, bool).
type Resolver struct {
	suppliers  repository.SupplierRepository
	pharmacies repository.PharmacyRepository
	admins     repository.AdminRepository
}

// NewResolver construit le résolveur.
func NewResolver(suppliers repository.SupplierRepository, pharmacies repository.PharmacyRepository, admins repository.AdminRepository) *Resolver {
	return &Resolver{suppliers: suppliers, pharmacies: pharmacies, admins: admins}
}

// Resolve renvoie le profil de l'identité, Kind=none si aucune table ne
// contient l'id. Seules les erreurs d'infrastructure remontent.
func (r *Resolver) Resolve(identityID string) (entity.Profile, error) {
	supplier, err := r.suppliers.GetByID(identityID)
	if err != nil {
		return entity.None(), err
	}
	if supplier != nil {
		return entity.ForSupplier(supplier), nil
	}

	pharmacy, err := r.pharmacies.GetByID(identityID)
	if err != nil {
		return entity.None(), err
	}
	if pharmacy != nil {
		return entity.ForPharmacy(pharmacy), nil
	}

	admin, err := r.admins.GetByID(identityID)
	if err != nil {
		return entity.None(), err
	}
	if admin != nil {
		return entity.ForAdmin(admin), nil
	}

	return entity.None(), nil
}
