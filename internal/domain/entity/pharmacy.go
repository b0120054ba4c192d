package entity

import "time"

// Pharmacy profil pharmacie (officine). ID = Identity.ID.
type Pharmacy struct {
	ID            string
	PharmacyName  string
	LicenseNumber string // numéro de licence, unique
	Phone         string
	Address       string
	Email         string
	IsVerified    bool // basculé uniquement par un admin
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
