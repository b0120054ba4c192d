package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound             = errors.New("ressource introuvable")
	ErrEmailAlreadyExists   = errors.New("cet email est déjà enregistré")
	ErrRegistryNumberExists = errors.New("ce numéro de registre de commerce est déjà utilisé")
	ErrLicenseNumberExists  = errors.New("ce numéro de licence est déjà utilisé")
	ErrInvalidCredentials   = errors.New("identifiants invalides")
	ErrInvalidInput         = errors.New("entrée invalide")
	ErrConflict             = errors.New("conflit avec l'état actuel")
	ErrUnauthorized         = errors.New("non autorisé")
	ErrForbidden            = errors.New("accès refusé")
)
