package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

// OrderUseCase commandes pharmacie → fournisseur. Le prix unitaire est
// figé au moment de la commande; Total = prix × quantité en décimal.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderUseCase construit le cas d'usage.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products}
}

// Create passe une commande pour la pharmacie appelante.
func (uc *OrderUseCase) Create(pharmacyID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		PharmacyID: pharmacyID,
		SupplierID: product.SupplierID,
		ProductID:  product.ID,
		Quantity:   in.Quantity,
		UnitPrice:  product.Price,
		Total:      product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:     entity.OrderPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(order), nil
}

// UpdateStatus change le statut d'une commande, réservé au fournisseur
// destinataire. Une commande livrée ou annulée ne bouge plus.
func (uc *OrderUseCase) UpdateStatus(supplierID, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	switch in.Status {
	case entity.OrderConfirmed, entity.OrderDelivered, entity.OrderCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.SupplierID != supplierID {
		return nil, domain.ErrForbidden
	}
	if order.Status == entity.OrderDelivered || order.Status == entity.OrderCancelled {
		return nil, domain.ErrConflict
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(order), nil
}

// ListByPharmacy liste les commandes passées par une pharmacie.
func (uc *OrderUseCase) ListByPharmacy(pharmacyID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orders.ListByPharmacy(pharmacyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

// ListBySupplier liste les commandes reçues par un fournisseur.
func (uc *OrderUseCase) ListBySupplier(supplierID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orders.ListBySupplier(supplierID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, limit, offset), nil
}

func toOrderList(list []*entity.Order, limit, offset int) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *dto.ToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
