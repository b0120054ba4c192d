package review

import (
	"time"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/session"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

// UseCase contrat de la console de revue admin: file des pièces en attente,
// décision approve/reject, bascule de vérification des profils. Deux admins
// décidant sur la même pièce: dernier écrit gagne, assumé (pas de jeton de
// concurrence optimiste).
type UseCase struct {
	documents  repository.DocumentRepository
	suppliers  repository.SupplierRepository
	pharmacies repository.PharmacyRepository
	resolver   *session.Resolver
}

// NewUseCase construit le cas d'usage de revue.
func NewUseCase(documents repository.DocumentRepository, suppliers repository.SupplierRepository, pharmacies repository.PharmacyRepository, resolver *session.Resolver) *UseCase {
	return &UseCase{documents: documents, suppliers: suppliers, pharmacies: pharmacies, resolver: resolver}
}

// ListPending liste la file des pièces en attente de revue.
func (uc *UseCase) ListPending(limit, offset int) (*dto.DocumentListResponse, error) {
	docs, err := uc.documents.ListByStatus(entity.DocumentPending, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, *dto.ToDocumentResponse(d))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Approve approuve une pièce en attente. Transition à sens unique: une
// pièce déjà revue renvoie ErrConflict. AllApproved signale que toutes les
// pièces du propriétaire sont désormais approuvées — simple signal, le
// profil n'est PAS vérifié automatiquement (opération admin distincte).
func (uc *UseCase) Approve(documentID string) (*dto.ReviewDecisionResponse, error) {
	return uc.decide(documentID, entity.DocumentApproved)
}

// Reject rejette une pièce en attente. Aucun parcours de re-soumission
// n'est modélisé: le rejet est terminal pour la pièce.
func (uc *UseCase) Reject(documentID string) (*dto.ReviewDecisionResponse, error) {
	return uc.decide(documentID, entity.DocumentRejected)
}

func (uc *UseCase) decide(documentID, status string) (*dto.ReviewDecisionResponse, error) {
	doc, err := uc.documents.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status != entity.DocumentPending {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	if err := uc.documents.UpdateStatus(doc.ID, status, now); err != nil {
		return nil, err
	}
	doc.Status = status
	doc.ReviewedAt = &now

	allApproved, err := uc.allApproved(doc.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.ReviewDecisionResponse{
		Document:    *dto.ToDocumentResponse(doc),
		AllApproved: allApproved,
	}, nil
}

func (uc *UseCase) allApproved(userID string) (bool, error) {
	docs, err := uc.documents.ListByUser(userID)
	if err != nil {
		return false, err
	}
	if len(docs) == 0 {
		return false, nil
	}
	for _, d := range docs {
		if d.Status != entity.DocumentApproved {
			return false, nil
		}
	}
	return true, nil
}

// VerifyProfile bascule is_verified sur le profil du propriétaire, quelle
// que soit la table où il vit (switch exhaustif sur l'union résolue).
func (uc *UseCase) VerifyProfile(userID string, verified bool) (*dto.ProfileResponse, error) {
	profile, err := uc.resolver.Resolve(userID)
	if err != nil {
		return nil, err
	}
	switch profile.Kind {
	case entity.KindSupplier:
		if err := uc.suppliers.SetVerified(userID, verified); err != nil {
			return nil, err
		}
		profile.Supplier.IsVerified = verified
	case entity.KindPharmacy:
		if err := uc.pharmacies.SetVerified(userID, verified); err != nil {
			return nil, err
		}
		profile.Pharmacy.IsVerified = verified
	default:
		return nil, domain.ErrNotFound
	}
	out := dto.ToProfileResponse(profile)
	return &out, nil
}
