package registration

import (
	"context"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/auth"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/session"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

// identityBridge adapte le cas d'usage auth + le contexte de session au
// port IdentityService: chaque SignUp/SignIn établit la session, CurrentUser
// relit l'identité depuis le contexte (l'étape de relecture du workflow).
type identityBridge struct {
	auth *auth.UseCase
	sess *session.Context
}

// NewIdentityService construit le pont auth/session.
func NewIdentityService(a *auth.UseCase, sess *session.Context) IdentityService {
	return &identityBridge{auth: a, sess: sess}
}

func (b *identityBridge) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	identity, err := b.auth.SignUp(email, password)
	if err != nil {
		return nil, err
	}
	if _, err := b.sess.Establish(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (b *identityBridge) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	identity, err := b.auth.SignIn(email, password)
	if err != nil {
		return nil, err
	}
	if _, err := b.sess.Establish(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

func (b *identityBridge) CurrentUser(ctx context.Context) (*entity.Identity, error) {
	snap := b.sess.Snapshot()
	if !snap.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	return snap.Identity, nil
}

func (b *identityBridge) SignOut(ctx context.Context) error {
	b.sess.Clear()
	return nil
}

// profileWriter adapte les deux dépôts physiques au port ProfileStore:
// l'union taguée décide de la table, switch exhaustif.
type profileWriter struct {
	suppliers  repository.SupplierRepository
	pharmacies repository.PharmacyRepository
}

// NewProfileStore construit l'adaptateur d'écriture de profils.
func NewProfileStore(suppliers repository.SupplierRepository, pharmacies repository.PharmacyRepository) ProfileStore {
	return &profileWriter{suppliers: suppliers, pharmacies: pharmacies}
}

func (pw *profileWriter) Create(ctx context.Context, profile entity.Profile) error {
	switch profile.Kind {
	case entity.KindSupplier:
		return pw.suppliers.Create(profile.Supplier)
	case entity.KindPharmacy:
		return pw.pharmacies.Create(profile.Pharmacy)
	default:
		return domain.ErrInvalidInput
	}
}
