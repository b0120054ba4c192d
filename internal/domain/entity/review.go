package entity

import "time"

// Review avis laissé par une pharmacie sur un fournisseur. Note entière
// de 1 à 5; l'agrégat (moyenne, total) vit sur Supplier.
type Review struct {
	ID         string
	SupplierID string
	PharmacyID string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
