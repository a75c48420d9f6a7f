package services

import (
	"fmt"
	"testing"

	"nola_analytics/internal/models"
	"nola_analytics/internal/repository"
	"nola_analytics/pkg/querybuilder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnalyticsRepo overrides only the methods a test exercises; calling
// anything else panics through the embedded nil interface.
type stubAnalyticsRepo struct {
	repository.AnalyticsRepository
	weekdayRows []models.WeekdayProductRow
	weekdayErr  error
	dailyRows   []models.DailyRevenue
	dailyErr    error
}

func (s *stubAnalyticsRepo) TopProductsByWeekday(brandID *uint) ([]models.WeekdayProductRow, error) {
	return s.weekdayRows, s.weekdayErr
}

func (s *stubAnalyticsRepo) RevenueByDay(brandID *uint, days int) ([]models.DailyRevenue, error) {
	return s.dailyRows, s.dailyErr
}

type stubCustomQueryRepo struct {
	gotQuery string
	gotArgs  []interface{}
	rows     []map[string]interface{}
	err      error
}

func (s *stubCustomQueryRepo) Run(query string, args []interface{}) ([]map[string]interface{}, error) {
	s.gotQuery = query
	s.gotArgs = args
	return s.rows, s.err
}

func TestAnalyticsService_TopProductsByWeekday(t *testing.T) {
	t.Run("caps each weekday at the limit preserving order", func(t *testing.T) {
		repo := &stubAnalyticsRepo{weekdayRows: []models.WeekdayProductRow{
			{DiaSemana: "Sun", DiaNumero: 0, ProductName: "Combo Família", TotalRevenue: 2100},
			{DiaSemana: "Sun", DiaNumero: 0, ProductName: "Pizza Calabresa", TotalRevenue: 1300},
			{DiaSemana: "Sun", DiaNumero: 0, ProductName: "Brownie", TotalRevenue: 400},
			{DiaSemana: "Mon", DiaNumero: 1, ProductName: "X-Burguer Clássico", TotalRevenue: 900},
		}}
		service := NewAnalyticsService(repo, &stubCustomQueryRepo{})

		grouped, err := service.TopProductsByWeekday(nil, 2)

		require.NoError(t, err)
		require.Len(t, grouped["Sun"], 2)
		assert.Equal(t, "Combo Família", grouped["Sun"][0].ProductName)
		assert.Equal(t, "Pizza Calabresa", grouped["Sun"][1].ProductName)
		require.Len(t, grouped["Mon"], 1)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &stubAnalyticsRepo{weekdayErr: fmt.Errorf("connection refused")}
		service := NewAnalyticsService(repo, &stubCustomQueryRepo{})

		grouped, err := service.TopProductsByWeekday(nil, 5)

		assert.Error(t, err)
		assert.Nil(t, grouped)
	})

	t.Run("empty result is an empty map", func(t *testing.T) {
		service := NewAnalyticsService(&stubAnalyticsRepo{}, &stubCustomQueryRepo{})

		grouped, err := service.TopProductsByWeekday(nil, 5)

		require.NoError(t, err)
		assert.NotNil(t, grouped)
		assert.Empty(t, grouped)
	})
}

func TestAnalyticsService_RevenueByDay(t *testing.T) {
	t.Run("normalizes nil rows to an empty slice", func(t *testing.T) {
		service := NewAnalyticsService(&stubAnalyticsRepo{}, &stubCustomQueryRepo{})

		rows, err := service.RevenueByDay(nil, 30)

		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestAnalyticsService_CustomQuery(t *testing.T) {
	t.Run("runs the built statement and echoes the selection", func(t *testing.T) {
		customRepo := &stubCustomQueryRepo{rows: []map[string]interface{}{
			{"revenue": "12400.50", "channel": "iFood"},
		}}
		service := NewAnalyticsService(&stubAnalyticsRepo{}, customRepo)

		result, err := service.CustomQuery(querybuilder.Request{
			Metrics:    []string{"revenue"},
			Dimensions: []string{"channel"},
			BrandID:    1,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"channel"}, result.Dimensions)
		assert.Equal(t, []string{"revenue"}, result.Metrics)
		assert.Len(t, result.Data, 1)
		assert.Contains(t, customRepo.gotQuery, "SUM(s.total_amount) AS revenue")
		assert.NotEmpty(t, customRepo.gotArgs)
		assert.NotContains(t, result.Query, "$1")
	})

	t.Run("surfaces validation errors without touching the database", func(t *testing.T) {
		customRepo := &stubCustomQueryRepo{}
		service := NewAnalyticsService(&stubAnalyticsRepo{}, customRepo)

		result, err := service.CustomQuery(querybuilder.Request{
			Dimensions: []string{"channel"},
			BrandID:    1,
		})

		assert.ErrorIs(t, err, querybuilder.ErrNoMetrics)
		assert.Nil(t, result)
		assert.Empty(t, customRepo.gotQuery)
	})

	t.Run("propagates execution errors", func(t *testing.T) {
		customRepo := &stubCustomQueryRepo{err: fmt.Errorf("relation does not exist")}
		service := NewAnalyticsService(&stubAnalyticsRepo{}, customRepo)

		result, err := service.CustomQuery(querybuilder.Request{
			Metrics:    []string{"sales"},
			Dimensions: []string{"date"},
			BrandID:    1,
		})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
