package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// CreateOrderRequest entrée de création d'une commande (côté pharmacie).
type CreateOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateOrderStatusRequest changement de statut (côté fournisseur).
type UpdateOrderStatusRequest struct {
	Status string `json:"status"` // confirmed, delivered, cancelled
}

// OrderResponse sortie d'une commande.
type OrderResponse struct {
	ID         string          `json:"id"`
	PharmacyID string          `json:"pharmacy_id"`
	SupplierID string          `json:"supplier_id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// OrderListResponse listage paginé.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ToOrderResponse convertit l'entité en DTO.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:         o.ID,
		PharmacyID: o.PharmacyID,
		SupplierID: o.SupplierID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		UnitPrice:  o.UnitPrice,
		Total:      o.Total,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
