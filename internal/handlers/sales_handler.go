package handlers

import (
	"net/http"
	"time"

	"nola_analytics/internal/services"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	salesService services.SalesService
}

func NewSalesHandler(salesService services.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

func (h *SalesHandler) ListSales(c *gin.Context) {
	page := queryIntDefault(c, "page", 1)
	limit := queryIntDefault(c, "limit", 50)
	brandID := queryUintPtr(c, "brand_id")
	storeID := queryUintPtr(c, "store_id")
	channelID := queryUintPtr(c, "channel_id")

	result, err := h.salesService.ListSales(page, limit, brandID, storeID, channelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SalesHandler) Summary(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	startDate := queryDatePtr(c, "start_date")
	endDate := queryDatePtr(c, "end_date")

	summary, err := h.salesService.Summary(brandID, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// queryDatePtr accepts YYYY-MM-DD or RFC3339 timestamps.
func queryDatePtr(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	return nil
}
