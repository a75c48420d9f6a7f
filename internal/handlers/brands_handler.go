package handlers

import (
	"net/http"
	"strconv"

	"nola_analytics/internal/services"

	"github.com/gin-gonic/gin"
)

type BrandsHandler struct {
	brandService services.BrandService
}

func NewBrandsHandler(brandService services.BrandService) *BrandsHandler {
	return &BrandsHandler{brandService: brandService}
}

func (h *BrandsHandler) GetBrands(c *gin.Context) {
	brands, err := h.brandService.GetBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *BrandsHandler) GetStores(c *gin.Context) {
	brandID, err := strconv.ParseUint(c.Param("brandId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}

	stores, err := h.brandService.GetStores(uint(brandID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (h *BrandsHandler) GetChannels(c *gin.Context) {
	brandID, err := strconv.ParseUint(c.Param("brandId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}

	channels, err := h.brandService.GetChannels(uint(brandID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch channels"})
		return
	}
	c.JSON(http.StatusOK, channels)
}
