package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nola_analytics/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSalesService struct {
	result       *models.PaginatedSales
	summary      *models.SalesSummary
	gotPage      int
	gotLimit     int
	gotBrandID   *uint
	gotStartDate *time.Time
	gotEndDate   *time.Time
}

func (s *stubSalesService) ListSales(page, limit int, brandID, storeID, channelID *uint) (*models.PaginatedSales, error) {
	s.gotPage = page
	s.gotLimit = limit
	s.gotBrandID = brandID
	return s.result, nil
}

func (s *stubSalesService) Summary(brandID *uint, startDate, endDate *time.Time) (*models.SalesSummary, error) {
	s.gotBrandID = brandID
	s.gotStartDate = startDate
	s.gotEndDate = endDate
	return s.summary, nil
}

func newSalesRouter(service *stubSalesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewSalesHandler(service)

	router := gin.New()
	router.GET("/api/sales", handler.ListSales)
	router.GET("/api/sales/summary", handler.Summary)
	return router
}

func TestSalesHandler_ListSales(t *testing.T) {
	t.Run("applies paging defaults", func(t *testing.T) {
		service := &stubSalesService{result: &models.PaginatedSales{
			Data:       []models.SaleListItem{},
			Pagination: models.Pagination{Page: 1, Limit: 50},
		}}
		router := newSalesRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, service.gotPage)
		assert.Equal(t, 50, service.gotLimit)

		var body models.PaginatedSales
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotNil(t, body.Data)
	})

	t.Run("rejects non-positive paging values back to defaults", func(t *testing.T) {
		service := &stubSalesService{result: &models.PaginatedSales{}}
		router := newSalesRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sales?page=0&limit=-5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, service.gotPage)
		assert.Equal(t, 50, service.gotLimit)
	})

	t.Run("forwards the brand filter", func(t *testing.T) {
		service := &stubSalesService{result: &models.PaginatedSales{}}
		router := newSalesRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sales?brand_id=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, service.gotBrandID)
		assert.Equal(t, uint(2), *service.gotBrandID)
	})
}

func TestSalesHandler_Summary(t *testing.T) {
	t.Run("parses plain dates", func(t *testing.T) {
		service := &stubSalesService{summary: &models.SalesSummary{TotalSales: 10}}
		router := newSalesRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sales/summary?start_date=2026-08-01&end_date=2026-08-31", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, service.gotStartDate)
		assert.Equal(t, 2026, service.gotStartDate.Year())
		assert.Equal(t, time.August, service.gotStartDate.Month())
		require.NotNil(t, service.gotEndDate)
		assert.Equal(t, 31, service.gotEndDate.Day())
	})

	t.Run("ignores malformed dates", func(t *testing.T) {
		service := &stubSalesService{summary: &models.SalesSummary{}}
		router := newSalesRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/sales/summary?start_date=yesterday", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, service.gotStartDate)
	})
}
