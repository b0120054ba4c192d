package registration

import (
	"errors"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
)

// Messages affichés à l'utilisateur. Un message fixe par cause identifiée;
// toute autre défaillance retombe sur le message générique.
const (
	MsgPasswordTooShort    = "Le mot de passe doit contenir au moins 6 caractères"
	MsgRequiredFields      = "Veuillez remplir tous les champs obligatoires"
	MsgEmailTaken          = "Cet email est déjà utilisé"
	MsgNumberTaken         = "Ce numéro d'enregistrement est déjà utilisé"
	MsgBadCredentials      = "Email ou mot de passe incorrect"
	MsgDocumentsIncomplete = "Veuillez déposer tous les documents requis"
	MsgGeneric             = "Une erreur est survenue, veuillez réessayer"
)

// UserMessage projette une erreur sur son message utilisateur.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return MsgEmailTaken
	case errors.Is(err, domain.ErrRegistryNumberExists), errors.Is(err, domain.ErrLicenseNumberExists):
		return MsgNumberTaken
	case errors.Is(err, domain.ErrInvalidCredentials):
		return MsgBadCredentials
	default:
		return MsgGeneric
	}
}
