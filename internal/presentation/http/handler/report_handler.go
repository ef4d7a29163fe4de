package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/application/service"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func parseDays(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(c, "Invalid days")
		return 0, false
	}
	return days, true
}

// Revenue handles the daily revenue report
func (h *ReportHandler) Revenue(c *gin.Context) {
	days, ok := parseDays(c)
	if !ok {
		return
	}

	points, err := h.reportService.Revenue(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue report retrieved successfully", points)
}

// Sales handles the bucketed sales report
func (h *ReportHandler) Sales(c *gin.Context) {
	days, ok := parseDays(c)
	if !ok {
		return
	}

	buckets, err := h.reportService.Sales(c.Request.Context(), enum.ReportPeriod(c.Query("period")), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report retrieved successfully", buckets)
}
