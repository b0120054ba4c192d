package registration

import (
	"context"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// IdentityService contrat minimal consommé par le workflow auprès du
// magasin d'identités/sessions. Chaque appel est un aller-retour réseau;
// timeouts et annulation sont délégués au client sous-jacent via ctx.
type IdentityService interface {
	SignUp(ctx context.Context, email, password string) (*entity.Identity, error)
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)
	CurrentUser(ctx context.Context) (*entity.Identity, error)
	SignOut(ctx context.Context) error
}

// ProfileStore insertion d'un profil métier (union taguée, une seule des
// deux tables physiques est touchée).
type ProfileStore interface {
	Create(ctx context.Context, profile entity.Profile) error
}

// DocumentStore promotion du brouillon en lignes documents. CreateBatch est
// tout-ou-rien: soit toutes les pièces sont persistées, soit aucune.
type DocumentStore interface {
	CreateBatch(ctx context.Context, docs []*entity.Document) error
}
