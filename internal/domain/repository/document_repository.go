package repository

import (
	"time"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// DocumentRepository port de persistance des pièces justificatives.
// L'insertion à l'inscription passe par le DocumentTxRunner (lot atomique);
// Create sert à l'intérieur de cette transaction.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	ListByUser(userID string) ([]*entity.Document, error)
	ListByStatus(status string, limit, offset int) ([]*entity.Document, error)
	// UpdateStatus applique la décision de revue (approved/rejected + reviewed_at).
	UpdateStatus(id, status string, reviewedAt time.Time) error
}
