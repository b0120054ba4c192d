package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier profil fournisseur pharmaceutique. ID = Identity.ID.
// AverageRating et TotalReviews sont maintenus par le module des avis.
type Supplier struct {
	ID             string
	CompanyName    string
	RegistryNumber string // numéro de registre de commerce, unique
	Phone          string
	Address        string
	Email          string
	IsVerified     bool // basculé uniquement par un admin
	AverageRating  decimal.Decimal
	TotalReviews   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
