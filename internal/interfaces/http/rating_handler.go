package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/usecase"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
)

// RatingHandler avis des pharmacies sur les fournisseurs.
type RatingHandler struct {
	uc *usecase.ReviewUseCase
}

// NewRatingHandler construit le handler des avis.
func NewRatingHandler(uc *usecase.ReviewUseCase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

// Create POST /api/reviews — dépose un avis (un seul par couple
// pharmacie/fournisseur).
func (h *RatingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fournisseur et note entre 1 et 5 requis"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fournisseur introuvable"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REVIEWED", Message: "avis déjà déposé pour ce fournisseur"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBySupplier GET /api/suppliers/:id/reviews — avis reçus par un
// fournisseur.
func (h *RatingHandler) ListBySupplier(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paramètres invalides"})
	}
	page.DefaultPage()
	out, err := h.uc.ListBySupplier(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
