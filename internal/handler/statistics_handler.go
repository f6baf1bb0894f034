package handler

import (
	"net/http"

	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/statistics", h.GetStatistics)
}

// GetStatistics returns invoicing and collection totals for a window
// @Summary      Get receivables statistics
// @Description  Totals invoiced, collected and outstanding amounts, with collections grouped by day or month
// @Tags         statistics
// @Security     BearerAuth
// @Produce      json
// @Param        from      query     string  false  "Window start (RFC3339, default 30 days before to)"
// @Param        to        query     string  false  "Window end (RFC3339, default now)"
// @Param        group_by  query     string  false  "day or month (default day)"
// @Success      200       {object}  response.Response{data=service.StatisticsResponse}
// @Failure      400       {object}  response.Response
// @Router       /api/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	filter := service.StatisticsFilter{
		From:    c.Query("from"),
		To:      c.Query("to"),
		GroupBy: c.Query("group_by"),
	}

	stats, err := h.statisticsService.GetStatistics(c.Request.Context(), tenantID, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
