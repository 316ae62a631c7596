package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/application/reports"
)

// ReportHandler dashboard y reportes de ventas/stock con exportación.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseRange lee start_date y end_date (YYYY-MM-DD) de la query.
func parseRange(c *fiber.Ctx) (start, end time.Time, ok bool) {
	var err error
	start, err = time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		return start, end, false
	}
	end, err = time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		return start, end, false
	}
	return start, end, true
}

// Dashboard godoc
// @Summary      Agregados del dashboard
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// SalesReport godoc
// @Summary      Reporte de ventas por día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	start, end, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date requeridos (YYYY-MM-DD)"})
	}
	out, err := h.uc.SalesReport(c.Context(), start, end)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// StockReport godoc
// @Summary      Reporte de stock por producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.StockReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	start, end, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date requeridos (YYYY-MM-DD)"})
	}
	out, err := h.uc.StockReport(c.Context(), start, end)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte (excel, pdf, csv)
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        type        query  string  true  "sales | stock"
// @Param        format      query  string  true  "excel | pdf | csv"
// @Param        start_date  query  string  true  "YYYY-MM-DD"
// @Param        end_date    query  string  true  "YYYY-MM-DD"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	start, end, ok := parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date requeridos (YYYY-MM-DD)"})
	}
	file, err := h.uc.Export(c.Context(), c.Query("type"), c.Query("format"), start, end)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Content)
}
