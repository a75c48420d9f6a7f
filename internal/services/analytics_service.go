package services

import (
	"nola_analytics/internal/models"
	"nola_analytics/internal/repository"
	"nola_analytics/pkg/querybuilder"
)

type AnalyticsService interface {
	RevenueByDay(brandID *uint, days int) ([]models.DailyRevenue, error)
	TopProducts(brandID *uint, limit int) ([]models.TopProduct, error)
	RevenueByChannel(brandID *uint, limit int) ([]models.ChannelRevenue, error)
	RevenueByStore(brandID *uint, limit int) ([]models.StoreRevenue, error)
	HourlyDistribution(brandID *uint) ([]models.HourlySales, error)
	StorePerformance(brandID uint, name string) ([]models.StorePerformance, error)
	Overview(brandID *uint) (*models.Overview, error)
	ChannelDistribution(brandID *uint) ([]models.ChannelShare, error)
	ProductStats(brandID *uint) (*models.ProductStats, error)
	CustomerStats(brandID *uint) (*models.CustomerStats, error)
	WeeklyDistribution(brandID *uint) ([]models.WeekdaySales, error)
	MonthlyGrowth(brandID *uint, months int) ([]models.MonthlyGrowth, error)
	ProductMargins(brandID *uint, limit int) ([]models.ProductMargin, error)
	DeliveryPerformance(brandID *uint, days int, groupBy string) ([]models.DeliveryPerformance, error)
	CustomerRetention(brandID *uint, daysInactive, minPurchases, limit int) ([]models.CustomerRetention, error)
	Anomalies(brandID *uint, days int) ([]models.Anomaly, error)
	TopProductsByWeekday(brandID *uint, limit int) (map[string][]models.WeekdayProduct, error)
	CustomQuery(req querybuilder.Request) (*models.CustomQueryResult, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	customRepo    repository.CustomQueryRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, customRepo repository.CustomQueryRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo, customRepo: customRepo}
}

func (s *analyticsService) RevenueByDay(brandID *uint, days int) ([]models.DailyRevenue, error) {
	rows, err := s.analyticsRepo.RevenueByDay(brandID, days)
	return nonNil(rows), err
}

func (s *analyticsService) TopProducts(brandID *uint, limit int) ([]models.TopProduct, error) {
	rows, err := s.analyticsRepo.TopProducts(brandID, limit)
	return nonNil(rows), err
}

func (s *analyticsService) RevenueByChannel(brandID *uint, limit int) ([]models.ChannelRevenue, error) {
	rows, err := s.analyticsRepo.RevenueByChannel(brandID, limit)
	return nonNil(rows), err
}

func (s *analyticsService) RevenueByStore(brandID *uint, limit int) ([]models.StoreRevenue, error) {
	rows, err := s.analyticsRepo.RevenueByStore(brandID, limit)
	return nonNil(rows), err
}

func (s *analyticsService) HourlyDistribution(brandID *uint) ([]models.HourlySales, error) {
	rows, err := s.analyticsRepo.HourlyDistribution(brandID)
	return nonNil(rows), err
}

func (s *analyticsService) StorePerformance(brandID uint, name string) ([]models.StorePerformance, error) {
	rows, err := s.analyticsRepo.StorePerformance(brandID, name)
	return nonNil(rows), err
}

func (s *analyticsService) Overview(brandID *uint) (*models.Overview, error) {
	return s.analyticsRepo.Overview(brandID)
}

func (s *analyticsService) ChannelDistribution(brandID *uint) ([]models.ChannelShare, error) {
	rows, err := s.analyticsRepo.ChannelDistribution(brandID)
	return nonNil(rows), err
}

func (s *analyticsService) ProductStats(brandID *uint) (*models.ProductStats, error) {
	return s.analyticsRepo.ProductStats(brandID)
}

func (s *analyticsService) CustomerStats(brandID *uint) (*models.CustomerStats, error) {
	return s.analyticsRepo.CustomerStats(brandID)
}

func (s *analyticsService) WeeklyDistribution(brandID *uint) ([]models.WeekdaySales, error) {
	rows, err := s.analyticsRepo.WeeklyDistribution(brandID)
	return nonNil(rows), err
}

func (s *analyticsService) MonthlyGrowth(brandID *uint, months int) ([]models.MonthlyGrowth, error) {
	rows, err := s.analyticsRepo.MonthlyGrowth(brandID, months)
	return nonNil(rows), err
}

func (s *analyticsService) ProductMargins(brandID *uint, limit int) ([]models.ProductMargin, error) {
	rows, err := s.analyticsRepo.ProductMargins(brandID, limit)
	return nonNil(rows), err
}

func (s *analyticsService) DeliveryPerformance(brandID *uint, days int, groupBy string) ([]models.DeliveryPerformance, error) {
	rows, err := s.analyticsRepo.DeliveryPerformance(brandID, days, groupBy)
	return nonNil(rows), err
}

func (s *analyticsService) CustomerRetention(brandID *uint, daysInactive, minPurchases, limit int) ([]models.CustomerRetention, error) {
	rows, err := s.analyticsRepo.CustomerRetention(brandID, daysInactive, minPurchases, limit)
	return nonNil(rows), err
}

func (s *analyticsService) Anomalies(brandID *uint, days int) ([]models.Anomaly, error) {
	rows, err := s.analyticsRepo.Anomalies(brandID, days)
	return nonNil(rows), err
}

// TopProductsByWeekday folds the flat weekday rows into per-weekday lists
// capped at limit. Rows arrive ordered by weekday then revenue descending, so
// appending until the cap keeps each bucket's top products.
func (s *analyticsService) TopProductsByWeekday(brandID *uint, limit int) (map[string][]models.WeekdayProduct, error) {
	rows, err := s.analyticsRepo.TopProductsByWeekday(brandID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.WeekdayProduct)
	for _, row := range rows {
		if len(grouped[row.DiaSemana]) >= limit {
			continue
		}
		grouped[row.DiaSemana] = append(grouped[row.DiaSemana], models.WeekdayProduct{
			ProductName:   row.ProductName,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  row.TotalRevenue,
			SalesCount:    row.SalesCount,
		})
	}
	return grouped, nil
}

// CustomQuery validates and assembles the caller's selection, runs it, and
// wraps the rows in the diagnostic envelope. Validation failures surface as
// querybuilder errors before the database is touched.
func (s *analyticsService) CustomQuery(req querybuilder.Request) (*models.CustomQueryResult, error) {
	query, err := querybuilder.Build(req)
	if err != nil {
		return nil, err
	}

	data, err := s.customRepo.Run(query.SQL, query.Args)
	if err != nil {
		return nil, err
	}

	return &models.CustomQueryResult{
		Data:       data,
		Dimensions: req.Dimensions,
		Metrics:    req.Metrics,
		Query:      query.MaskedSQL(),
	}, nil
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
