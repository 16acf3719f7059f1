package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Nick232002/PROYECTO-PRODUCTIVO/internal/application/report"
)

// ReportHandler descarga los reportes de productos.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar productos
// @Tags         reports
// @Produce      text/csv
// @Produce      application/pdf
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/products.csv [get]
// @Router       /api/reports/products.pdf [get]
func (h *ReportHandler) Export(format report.Format) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := h.uc.Export(c.UserContext(), format)
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, doc.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
		c.Set("X-Report-Rows", fmt.Sprint(doc.Rows))
		return c.Send(doc.Data)
	}
}
