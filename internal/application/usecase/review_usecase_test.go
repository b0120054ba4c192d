package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/usecase"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/infrastructure/memory"
)

// reviewStore dépôt d'avis en mémoire, le temps du test.
type reviewStore struct {
	reviews []*entity.Review
}

func (s *reviewStore) Create(r *entity.Review) error {
	s.reviews = append(s.reviews, r)
	return nil
}

func (s *reviewStore) GetByPharmacyAndSupplier(pharmacyID, supplierID string) (*entity.Review, error) {
	for _, r := range s.reviews {
		if r.PharmacyID == pharmacyID && r.SupplierID == supplierID {
			return r, nil
		}
	}
	return nil, nil
}

func (s *reviewStore) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range s.reviews {
		if r.SupplierID == supplierID {
			out = append(out, r)
		}
	}
	return out, nil
}

func seedSupplier(t *testing.T, suppliers *memory.SupplierStore, avg string, total int) {
	t.Helper()
	require.NoError(t, suppliers.Create(&entity.Supplier{
		ID:             "sup-1",
		CompanyName:    "Biopharm",
		RegistryNumber: "RC-1",
		AverageRating:  decimal.RequireFromString(avg),
		TotalReviews:   total,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Recalcul de l'agrégat: (moyenne×total + note) / (total+1), arrondi à deux
// décimales.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateReview_PremierAvis(t *testing.T) {
	suppliers := memory.NewSupplierStore()
	seedSupplier(t, suppliers, "0", 0)
	uc := usecase.NewReviewUseCase(&reviewStore{}, suppliers)

	out, err := uc.Create("pharm-1", dto.CreateReviewRequest{
		SupplierID: "sup-1", Rating: 4, Comment: "Livraison rapide",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Rating)

	supplier, err := suppliers.GetByID("sup-1")
	require.NoError(t, err)
	assert.True(t, supplier.AverageRating.Equal(decimal.RequireFromString("4")),
		"moyenne attendue 4, obtenue %s", supplier.AverageRating)
	assert.Equal(t, 1, supplier.TotalReviews)
}

func TestCreateReview_RecalculDeLaMoyenne(t *testing.T) {
	suppliers := memory.NewSupplierStore()
	// Deux avis existants de moyenne 4.50.
	seedSupplier(t, suppliers, "4.50", 2)
	uc := usecase.NewReviewUseCase(&reviewStore{}, suppliers)

	// (4.50×2 + 2) / 3 = 3.666... → 3.67
	_, err := uc.Create("pharm-1", dto.CreateReviewRequest{SupplierID: "sup-1", Rating: 2})
	require.NoError(t, err)

	supplier, err := suppliers.GetByID("sup-1")
	require.NoError(t, err)
	assert.True(t, supplier.AverageRating.Equal(decimal.RequireFromString("3.67")),
		"moyenne attendue 3.67, obtenue %s", supplier.AverageRating)
	assert.Equal(t, 3, supplier.TotalReviews)
}

func TestCreateReview_UnSeulAvisParCouple(t *testing.T) {
	suppliers := memory.NewSupplierStore()
	seedSupplier(t, suppliers, "0", 0)
	uc := usecase.NewReviewUseCase(&reviewStore{}, suppliers)

	_, err := uc.Create("pharm-1", dto.CreateReviewRequest{SupplierID: "sup-1", Rating: 5})
	require.NoError(t, err)
	_, err = uc.Create("pharm-1", dto.CreateReviewRequest{SupplierID: "sup-1", Rating: 1})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// L'agrégat n'a pas bougé après le refus.
	supplier, err := suppliers.GetByID("sup-1")
	require.NoError(t, err)
	assert.Equal(t, 1, supplier.TotalReviews)
}

func TestCreateReview_NoteHorsBornes(t *testing.T) {
	suppliers := memory.NewSupplierStore()
	seedSupplier(t, suppliers, "0", 0)
	uc := usecase.NewReviewUseCase(&reviewStore{}, suppliers)

	_, err := uc.Create("pharm-1", dto.CreateReviewRequest{SupplierID: "sup-1", Rating: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create("pharm-1", dto.CreateReviewRequest{SupplierID: "sup-1", Rating: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateReview_FournisseurIntrouvable(t *testing.T) {
	uc := usecase.NewReviewUseCase(&reviewStore{}, memory.NewSupplierStore())
	_, err := uc.Create("pharm-1", dto.CreateReviewRequest{SupplierID: "sup-inconnu", Rating: 3})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
