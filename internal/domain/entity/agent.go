package entity

import "time"

// CommercialAgent délégué commercial rattaché à un fournisseur, contact
// de terrain pour les pharmacies d'une région.
type CommercialAgent struct {
	ID         string
	SupplierID string
	FullName   string
	Phone      string
	Email      string
	Region     string // wilaya couverte, ex. "Alger"
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
