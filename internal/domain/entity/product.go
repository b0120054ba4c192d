package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product produit pharmaceutique publié par un fournisseur.
type Product struct {
	ID          string
	SupplierID  string
	Name        string
	Description string
	Category    string // ex. "Antibiotiques", "Parapharmacie"
	Price       decimal.Decimal
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
