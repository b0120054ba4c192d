package registration

import (
	"time"

	"github.com/google/uuid"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// Draft ensemble de dépôt des pièces, purement local tant que la soumission
// finale n'a pas eu lieu. Distinct de l'entité Document persistée: la
// promotion brouillon → lignes documents est une étape explicite (Promote).
type Draft struct {
	required []string
	uploaded map[string]string // libellé → nom de fichier
}

// NewDraft construit le brouillon avec les pièces exigées pour le rôle.
func NewDraft(kind entity.ProfileKind) *Draft {
	return &Draft{
		required: entity.RequiredDocuments(kind),
		uploaded: make(map[string]string),
	}
}

// Mark marque une pièce comme déposée. Idempotent: re-déposer un libellé
// déjà marqué remplace simplement le nom de fichier, sans doublon. Renvoie
// false si le libellé n'appartient pas aux pièces exigées.
func (d *Draft) Mark(docType, fileName string) bool {
	for _, req := range d.required {
		if req == docType {
			d.uploaded[docType] = fileName
			return true
		}
	}
	return false
}

// Unmark retire une pièce du brouillon.
func (d *Draft) Unmark(docType string) {
	delete(d.uploaded, docType)
}

// Required libellés exigés pour le rôle.
func (d *Draft) Required() []string {
	return append([]string{}, d.required...)
}

// Count nombre de pièces marquées déposées.
func (d *Draft) Count() int {
	return len(d.uploaded)
}

// Complete vrai ssi le nombre de pièces déposées égale le nombre exigé.
func (d *Draft) Complete() bool {
	return len(d.uploaded) == len(d.required)
}

// Promote matérialise le brouillon en entités Document (statut pending),
// une par libellé exigé, dans l'ordre des pièces exigées.
func (d *Draft) Promote(userID string, now time.Time) []*entity.Document {
	docs := make([]*entity.Document, 0, len(d.uploaded))
	for _, docType := range d.required {
		fileName, ok := d.uploaded[docType]
		if !ok {
			continue
		}
		docs = append(docs, &entity.Document{
			ID:           uuid.New().String(),
			UserID:       userID,
			DocumentType: docType,
			FileName:     fileName,
			Status:       entity.DocumentPending,
			UploadedAt:   now,
		})
	}
	return docs
}
