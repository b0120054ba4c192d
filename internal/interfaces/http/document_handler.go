package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/dto"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/usecase"
)

// DocumentHandler suivi des pièces justificatives par leur propriétaire.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construit le handler des pièces.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// ListMine GET /api/documents — pièces du compte appelant avec leur statut
// de revue.
func (h *DocumentHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
