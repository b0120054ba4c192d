package entity

import "time"

// Identity enregistrement d'authentification (table users), indépendant du
// profil métier. Un Identity correspond à au plus un profil.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, jamais en clair après persistance
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
