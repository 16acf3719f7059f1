package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/dto"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/usecase"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain"
	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/domain/entity"
)

// MovementHandler expone el libro de movimientos (solo lectura).
type MovementHandler struct {
	queries *usecase.QueryFacade
}

// NewMovementHandler construye el handler.
func NewMovementHandler(queries *usecase.QueryFacade) *MovementHandler {
	return &MovementHandler{queries: queries}
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Param        type  query  string  false  "in | out (también entrada | salida)"
// @Success      200   {array}   dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var filter *entity.MovementType
	if raw := c.Query("type"); raw != "" {
		t, err := entity.ParseMovementType(raw)
		if err != nil {
			return writeError(c, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
		}
		filter = &t
	}
	list, err := h.queries.ListMovementsWithProductName(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewMovementViewList(list))
}

// ListForProduct godoc
// @Summary      Movimientos de un producto
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [get]
func (h *MovementHandler) ListForProduct(c *fiber.Ctx) error {
	list, err := h.queries.MovementsForProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewMovementList(list))
}

// Audit godoc
// @Summary      Auditar libro de movimientos
// @Description  Compara el stock de cada producto con la suma de sus movimientos.
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.LedgerAuditResponse
// @Router       /api/ledger/audit [get]
func (h *MovementHandler) Audit(c *fiber.Ctx) error {
	list, err := h.queries.AuditLedger(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewLedgerAuditResponse(list))
}
