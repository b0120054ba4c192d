package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'une commande.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order commande passée par une pharmacie auprès d'un fournisseur.
// Total = prix unitaire au moment de la commande × quantité.
type Order struct {
	ID         string
	PharmacyID string
	SupplierID string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
