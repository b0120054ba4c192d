package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
)

// SupplierResponse sortie d'un profil fournisseur.
type SupplierResponse struct {
	ID             string          `json:"id"`
	CompanyName    string          `json:"company_name"`
	RegistryNumber string          `json:"registry_number"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	Email          string          `json:"email"`
	IsVerified     bool            `json:"is_verified"`
	AverageRating  decimal.Decimal `json:"average_rating"`
	TotalReviews   int             `json:"total_reviews"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PharmacyResponse sortie d'un profil pharmacie.
type PharmacyResponse struct {
	ID            string    `json:"id"`
	PharmacyName  string    `json:"pharmacy_name"`
	LicenseNumber string    `json:"license_number"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Email         string    `json:"email"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProfileResponse union sérialisée: Kind discrimine, un seul des deux
// pointeurs est renseigné.
type ProfileResponse struct {
	Kind       string            `json:"kind"`
	IsVerified bool              `json:"is_verified"`
	Supplier   *SupplierResponse `json:"supplier,omitempty"`
	Pharmacy   *PharmacyResponse `json:"pharmacy,omitempty"`
}

// ToSupplierResponse convertit l'entité en DTO.
func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		ID:             s.ID,
		CompanyName:    s.CompanyName,
		RegistryNumber: s.RegistryNumber,
		Phone:          s.Phone,
		Address:        s.Address,
		Email:          s.Email,
		IsVerified:     s.IsVerified,
		AverageRating:  s.AverageRating,
		TotalReviews:   s.TotalReviews,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ToPharmacyResponse convertit l'entité en DTO.
func ToPharmacyResponse(p *entity.Pharmacy) *PharmacyResponse {
	if p == nil {
		return nil
	}
	return &PharmacyResponse{
		ID:            p.ID,
		PharmacyName:  p.PharmacyName,
		LicenseNumber: p.LicenseNumber,
		Phone:         p.Phone,
		Address:       p.Address,
		Email:         p.Email,
		IsVerified:    p.IsVerified,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProfileResponse convertit l'union taguée en DTO (switch exhaustif).
func ToProfileResponse(p entity.Profile) ProfileResponse {
	out := ProfileResponse{Kind: string(p.Kind), IsVerified: p.IsVerified()}
	switch p.Kind {
	case entity.KindSupplier:
		out.Supplier = ToSupplierResponse(p.Supplier)
	case entity.KindPharmacy:
		out.Pharmacy = ToPharmacyResponse(p.Pharmacy)
	}
	return out
}
