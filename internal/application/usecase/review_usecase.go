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

// ReviewUseCase avis des pharmacies sur les fournisseurs. Chaque création
// recalcule l'agrégat (moyenne, total) porté par le profil fournisseur.
type ReviewUseCase struct {
	reviews   repository.ReviewRepository
	suppliers repository.SupplierRepository
}

// NewReviewUseCase construit le cas d'usage.
func NewReviewUseCase(reviews repository.ReviewRepository, suppliers repository.SupplierRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, suppliers: suppliers}
}

// Create enregistre un avis (un seul par couple pharmacie/fournisseur) puis
// met à jour la moyenne: (moyenne×total + note) / (total+1), arrondie à
// deux décimales.
func (uc *ReviewUseCase) Create(pharmacyID string, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.SupplierID == "" || in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.suppliers.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.reviews.GetByPharmacyAndSupplier(pharmacyID, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	review := &entity.Review{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		PharmacyID: pharmacyID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  time.Now(),
	}
	if err := uc.reviews.Create(review); err != nil {
		return nil, err
	}

	total := supplier.TotalReviews + 1
	sum := supplier.AverageRating.Mul(decimal.NewFromInt(int64(supplier.TotalReviews))).
		Add(decimal.NewFromInt(int64(in.Rating)))
	average := sum.Div(decimal.NewFromInt(int64(total))).Round(2)
	if err := uc.suppliers.UpdateRating(supplier.ID, average, total); err != nil {
		return nil, err
	}

	return dto.ToReviewResponse(review), nil
}

// ListBySupplier liste les avis reçus par un fournisseur.
func (uc *ReviewUseCase) ListBySupplier(supplierID string, limit, offset int) (*dto.ReviewListResponse, error) {
	list, err := uc.reviews.ListBySupplier(supplierID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *dto.ToReviewResponse(r))
	}
	return &dto.ReviewListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
