package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/usecase"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// Dépôts en mémoire le temps du test.

type productStore struct {
	products map[string]*entity.Product
}

func newProductStore() *productStore {
	return &productStore{products: make(map[string]*entity.Product)}
}

func (s *productStore) Create(p *entity.Product) error { s.products[p.ID] = p; return nil }
func (s *productStore) GetByID(id string) (*entity.Product, error) {
	return s.products[id], nil
}
func (s *productStore) ListBySupplier(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (s *productStore) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (s *productStore) Update(p *entity.Product) error           { s.products[p.ID] = p; return nil }
func (s *productStore) Delete(id string) error                   { delete(s.products, id); return nil }

type orderStore struct {
	orders map[string]*entity.Order
}

func newOrderStore() *orderStore { return &orderStore{orders: make(map[string]*entity.Order)} }

func (s *orderStore) Create(o *entity.Order) error { s.orders[o.ID] = o; return nil }
func (s *orderStore) GetByID(id string) (*entity.Order, error) {
	return s.orders[id], nil
}
func (s *orderStore) ListByPharmacy(string, int, int) ([]*entity.Order, error) { return nil, nil }
func (s *orderStore) ListBySupplier(string, int, int) ([]*entity.Order, error) { return nil, nil }
func (s *orderStore) Update(o *entity.Order) error                             { s.orders[o.ID] = o; return nil }

func seedProduct(products *productStore, price string) *entity.Product {
	p := &entity.Product{
		ID:         "prod-1",
		SupplierID: "sup-1",
		Name:       "Paracétamol 500mg",
		Price:      decimal.RequireFromString(price),
		Stock:      100,
		CreatedAt:  time.Now(),
	}
	products.products[p.ID] = p
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Création: prix unitaire figé, total en arithmétique décimale.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_PrixFigeEtTotalDecimal(t *testing.T) {
	products := newProductStore()
	orders := newOrderStore()
	seedProduct(products, "125.50")
	uc := usecase.NewOrderUseCase(orders, products)

	out, err := uc.Create("pharm-1", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 3})
	require.NoError(t, err)
	assert.True(t, out.UnitPrice.Equal(decimal.RequireFromString("125.50")))
	assert.True(t, out.Total.Equal(decimal.RequireFromString("376.50")),
		"total attendu 376.50, obtenu %s", out.Total)
	assert.Equal(t, entity.OrderPending, out.Status)
	assert.Equal(t, "sup-1", out.SupplierID, "le fournisseur est déduit du produit")
}

func TestCreateOrder_QuantiteInvalide(t *testing.T) {
	products := newProductStore()
	seedProduct(products, "10")
	uc := usecase.NewOrderUseCase(newOrderStore(), products)

	_, err := uc.Create("pharm-1", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_ProduitIntrouvable(t *testing.T) {
	uc := usecase.NewOrderUseCase(newOrderStore(), newProductStore())
	_, err := uc.Create("pharm-1", dto.CreateOrderRequest{ProductID: "prod-inconnu", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Changement de statut
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_CycleNominal(t *testing.T) {
	products := newProductStore()
	orders := newOrderStore()
	seedProduct(products, "10")
	uc := usecase.NewOrderUseCase(orders, products)

	created, err := uc.Create("pharm-1", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1})
	require.NoError(t, err)

	out, err := uc.UpdateStatus("sup-1", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderConfirmed})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, out.Status)

	out, err = uc.UpdateStatus("sup-1", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderDelivered})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, out.Status)
}

// Une commande livrée ou annulée ne bouge plus.
func TestUpdateStatus_EtatTerminal(t *testing.T) {
	products := newProductStore()
	orders := newOrderStore()
	seedProduct(products, "10")
	uc := usecase.NewOrderUseCase(orders, products)

	created, err := uc.Create("pharm-1", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.UpdateStatus("sup-1", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderCancelled})
	require.NoError(t, err)

	_, err = uc.UpdateStatus("sup-1", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderConfirmed})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_AutreFournisseur(t *testing.T) {
	products := newProductStore()
	orders := newOrderStore()
	seedProduct(products, "10")
	uc := usecase.NewOrderUseCase(orders, products)

	created, err := uc.Create("pharm-1", dto.CreateOrderRequest{ProductID: "prod-1", Quantity: 1})
	require.NoError(t, err)

	_, err = uc.UpdateStatus("sup-autre", created.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderConfirmed})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_StatutInconnu(t *testing.T) {
	uc := usecase.NewOrderUseCase(newOrderStore(), newProductStore())
	_, err := uc.UpdateStatus("sup-1", "o-1", dto.UpdateOrderStatusRequest{Status: "expédiée"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
