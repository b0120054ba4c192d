package entity

import "time"

// AdminUser membre de la console d'administration. Les identifiants vivent
// dans la table users; cette table ne porte que l'appartenance.
type AdminUser struct {
	ID        string // = Identity.ID
	Email     string
	CreatedAt time.Time
}
