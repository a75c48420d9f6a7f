package services

import (
	"time"

	"nola_analytics/internal/models"
	"nola_analytics/internal/repository"
)

type SalesService interface {
	ListSales(page, limit int, brandID, storeID, channelID *uint) (*models.PaginatedSales, error)
	Summary(brandID *uint, startDate, endDate *time.Time) (*models.SalesSummary, error)
}

type salesService struct {
	salesRepo repository.SalesRepository
}

func NewSalesService(salesRepo repository.SalesRepository) SalesService {
	return &salesService{salesRepo: salesRepo}
}

func (s *salesService) ListSales(page, limit int, brandID, storeID, channelID *uint) (*models.PaginatedSales, error) {
	offset := (page - 1) * limit

	rows, err := s.salesRepo.List(brandID, storeID, channelID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.salesRepo.Count(brandID, storeID, channelID)
	if err != nil {
		return nil, err
	}

	pages := (total + int64(limit) - 1) / int64(limit)
	return &models.PaginatedSales{
		Data: nonNil(rows),
		Pagination: models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *salesService) Summary(brandID *uint, startDate, endDate *time.Time) (*models.SalesSummary, error) {
	return s.salesRepo.Summary(brandID, startDate, endDate)
}
