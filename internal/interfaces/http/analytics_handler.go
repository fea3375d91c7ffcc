package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/analytics"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// AnalyticsHandler maneja el resumen de ventas del dashboard.
type AnalyticsHandler struct {
	uc *analytics.SummaryUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.SummaryUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de ventas del período
// @Description  Totales, ticket promedio, top de productos, ventas por método de pago
//               y la serie diaria de los últimos 7 días.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "Rango: today | week | month (default: today)"
// @Success      200  {object}  dto.AnalyticsSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	dateRange := c.Query("range", dto.RangeToday)

	out, err := h.uc.GetSummary(c.UserContext(), dateRange)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "range debe ser today, week o month",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}
