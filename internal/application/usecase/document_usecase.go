package usecase

import (
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
)

// DocumentUseCase lecture des pièces d'un utilisateur (suivi du statut de
// revue depuis son tableau de bord). Aucun parcours de re-soumission.
type DocumentUseCase struct {
	repo repository.DocumentRepository
}

// NewDocumentUseCase construit le cas d'usage.
func NewDocumentUseCase(repo repository.DocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo}
}

// ListByUser liste les pièces du propriétaire.
func (uc *DocumentUseCase) ListByUser(userID string) (*dto.DocumentListResponse, error) {
	docs, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, *dto.ToDocumentResponse(d))
	}
	return &dto.DocumentListResponse{Items: items}, nil
}
