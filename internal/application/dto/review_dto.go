package dto

import (
	"time"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// CreateReviewRequest entrée de création d'un avis (côté pharmacie).
type CreateReviewRequest struct {
	SupplierID string `json:"supplier_id"`
	Rating     int    `json:"rating"` // 1 à 5
	Comment    string `json:"comment"`
}

// ReviewResponse sortie d'un avis.
type ReviewResponse struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplier_id"`
	PharmacyID string    `json:"pharmacy_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewListResponse listage paginé.
type ReviewListResponse struct {
	Items []ReviewResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ToReviewResponse convertit l'entité en DTO.
func ToReviewResponse(r *entity.Review) *ReviewResponse {
	if r == nil {
		return nil
	}
	return &ReviewResponse{
		ID:         r.ID,
		SupplierID: r.SupplierID,
		PharmacyID: r.PharmacyID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
