package entity

import "time"

// Statuts d'un document justificatif. Transitions pending→approved ou
// pending→rejected, réservées à l'admin, à sens unique.
const (
	DocumentPending  = "pending"
	DocumentApproved = "approved"
	DocumentRejected = "rejected"
)

// Document pièce justificative soumise à l'inscription et suivie à travers
// la revue admin. ReviewedAt reste nil tant que le statut est pending.
type Document struct {
	ID           string
	UserID       string // → Identity.ID
	DocumentType string // libellé, ex. "Registre de commerce"
	FileName     string
	Status       string
	UploadedAt   time.Time
	ReviewedAt   *time.Time
}

// RequiredDocuments libellés des pièces exigées pour un rôle donné. La
// soumission n'est complète que lorsque chaque libellé a été déposé.
func RequiredDocuments(kind ProfileKind) []string {
	switch kind {
	case KindSupplier:
		return []string{"Registre de commerce", "Pièce d'identité", "Certificat d'inscription"}
	case KindPharmacy:
		return []string{"Licence de pharmacie", "Pièce d'identité", "Certificat d'inscription"}
	default:
		return nil
	}
}
