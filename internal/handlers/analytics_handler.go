package handlers

import (
	"errors"
	"net/http"

	"nola_analytics/internal/services"
	"nola_analytics/pkg/querybuilder"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RevenueByDay(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	days := queryIntDefault(c, "days", 30)

	rows, err := h.analyticsService.RevenueByDay(brandID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch revenue by day"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) TopProducts(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	limit := queryIntDefault(c, "limit", 10)

	rows, err := h.analyticsService.TopProducts(brandID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top products"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) RevenueByChannel(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	limit := queryIntDefault(c, "limit", 5)

	rows, err := h.analyticsService.RevenueByChannel(brandID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch revenue by channel"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) RevenueByStore(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	limit := queryIntDefault(c, "limit", 20)

	rows, err := h.analyticsService.RevenueByStore(brandID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch revenue by store"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) HourlyDistribution(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")

	rows, err := h.analyticsService.HourlyDistribution(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hourly distribution"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) StorePerformance(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	if brandID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}
	name := c.Query("name")

	rows, err := h.analyticsService.StorePerformance(*brandID, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch store performance"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) Overview(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")

	overview, err := h.analyticsService.Overview(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch overview"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *AnalyticsHandler) ChannelDistribution(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")

	rows, err := h.analyticsService.ChannelDistribution(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch channel distribution"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) ProductStats(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")

	stats, err := h.analyticsService.ProductStats(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) CustomerStats(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")

	stats, err := h.analyticsService.CustomerStats(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) WeeklyDistribution(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")

	rows, err := h.analyticsService.WeeklyDistribution(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weekly distribution"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) MonthlyGrowth(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	months := queryIntDefault(c, "months", 6)

	rows, err := h.analyticsService.MonthlyGrowth(brandID, months)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch monthly growth"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) ProductMargins(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	limit := queryIntDefault(c, "limit", 20)

	rows, err := h.analyticsService.ProductMargins(brandID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product margins"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) DeliveryPerformance(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	days := queryIntDefault(c, "days", 30)
	groupBy := c.DefaultQuery("group_by", "day")

	rows, err := h.analyticsService.DeliveryPerformance(brandID, days, groupBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch delivery performance"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) CustomerRetention(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	daysInactive := queryIntDefault(c, "days_inactive", 30)
	minPurchases := queryIntDefault(c, "min_purchases", 3)
	limit := queryIntDefault(c, "limit", 10)

	rows, err := h.analyticsService.CustomerRetention(brandID, daysInactive, minPurchases, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer retention"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) Anomalies(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	days := queryIntDefault(c, "days", 30)

	rows, err := h.analyticsService.Anomalies(brandID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch anomalies"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) TopProductsByWeekday(c *gin.Context) {
	brandID := queryUintPtr(c, "brand_id")
	limit := queryIntDefault(c, "limit", 5)

	grouped, err := h.analyticsService.TopProductsByWeekday(brandID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top products by weekday"})
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *AnalyticsHandler) CustomQuery(c *gin.Context) {
	var req querybuilder.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.BrandID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}

	result, err := h.analyticsService.CustomQuery(req)
	if err != nil {
		if errors.Is(err, querybuilder.ErrNoMetrics) || errors.Is(err, querybuilder.ErrNoDimensions) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run custom query"})
		return
	}
	c.JSON(http.StatusOK, result)
}
