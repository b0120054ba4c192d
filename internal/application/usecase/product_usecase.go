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

// ProductUseCase CRUD du catalogue produits. Vues fines pour les tableaux
// de bord: validation minimale, propriété par fournisseur, pas de règle
// métier au-delà.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construit le cas d'usage.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create publie un nouveau produit pour le fournisseur appelant.
func (uc *ProductUseCase) Create(supplierID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.LessThanOrEqual(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SupplierID:  supplierID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// GetByID lit un produit.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return dto.ToProductResponse(product), nil
}

// Update met à jour un produit, réservé au fournisseur propriétaire.
func (uc *ProductUseCase) Update(supplierID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.SupplierID != supplierID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// List liste le catalogue global (vue pharmacie) avec pagination.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, limit, offset), nil
}

// ListBySupplier liste le catalogue d'un fournisseur.
func (uc *ProductUseCase) ListBySupplier(supplierID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListBySupplier(supplierID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, limit, offset), nil
}

// Delete supprime un produit, réservé au fournisseur propriétaire.
func (uc *ProductUseCase) Delete(supplierID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.SupplierID != supplierID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toProductList(list []*entity.Product, limit, offset int) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
