package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/review"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain"
)

// ReviewHandler console de revue admin: file des pièces en attente,
// décisions, bascule de vérification, export xlsx.
type ReviewHandler struct {
	uc *review.UseCase
}

// NewReviewHandler construit le handler de revue.
func NewReviewHandler(uc *review.UseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// ListPending GET /api/admin/documents — file des pièces en attente.
func (h *ReviewHandler) ListPending(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paramètres invalides"})
	}
	page.DefaultPage()
	out, err := h.uc.ListPending(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Approve POST /api/admin/documents/:id/approve — approuve une pièce.
func (h *ReviewHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, h.uc.Approve)
}

// Reject POST /api/admin/documents/:id/reject — rejette une pièce.
func (h *ReviewHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, h.uc.Reject)
}

func (h *ReviewHandler) decide(c *fiber.Ctx, fn func(string) (*dto.ReviewDecisionResponse, error)) error {
	out, err := fn(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pièce introuvable"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REVIEWED", Message: "pièce déjà revue"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// VerifyProfile PUT /api/admin/profiles/:id/verify — bascule is_verified sur
// le profil du compte, quelle que soit sa table.
func (h *ReviewHandler) VerifyProfile(c *fiber.Ctx) error {
	var in struct {
		Verified bool `json:"verified"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.VerifyProfile(c.Params("id"), in.Verified)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "profil introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportQueue GET /api/admin/documents/export — classeur xlsx de la file.
func (h *ReviewHandler) ExportQueue(c *fiber.Ctx) error {
	data, err := h.uc.ExportQueue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="file-de-revue.xlsx"`)
	return c.Send(data)
}
