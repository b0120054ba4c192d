package dto

import (
	"time"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// DocumentResponse sortie d'une pièce justificative.
type DocumentResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	DocumentType string     `json:"document_type"`
	FileName     string     `json:"file_name"`
	Status       string     `json:"status"`
	UploadedAt   time.Time  `json:"uploaded_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}

// DocumentListResponse listage paginé.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReviewDecisionResponse résultat d'une décision de revue. AllApproved
// signale que toutes les pièces du propriétaire sont désormais approuvées;
// le basculement de is_verified reste une opération admin distincte.
type ReviewDecisionResponse struct {
	Document    DocumentResponse `json:"document"`
	AllApproved bool             `json:"all_approved"`
}

// ToDocumentResponse convertit l'entité en DTO.
func ToDocumentResponse(d *entity.Document) *DocumentResponse {
	if d == nil {
		return nil
	}
	return &DocumentResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		DocumentType: d.DocumentType,
		FileName:     d.FileName,
		Status:       d.Status,
		UploadedAt:   d.UploadedAt,
		ReviewedAt:   d.ReviewedAt,
	}
}
