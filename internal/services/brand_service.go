package services

import (
	"nola_analytics/internal/models"
	"nola_analytics/internal/repository"
)

type BrandService interface {
	GetBrands() ([]models.Brand, error)
	GetStores(brandID uint) ([]models.Store, error)
	GetChannels(brandID uint) ([]models.Channel, error)
}

type brandService struct {
	brandRepo repository.BrandRepository
}

func NewBrandService(brandRepo repository.BrandRepository) BrandService {
	return &brandService{brandRepo: brandRepo}
}

func (s *brandService) GetBrands() ([]models.Brand, error) {
	brands, err := s.brandRepo.GetAll()
	return nonNil(brands), err
}

func (s *brandService) GetStores(brandID uint) ([]models.Store, error) {
	stores, err := s.brandRepo.GetStores(brandID)
	return nonNil(stores), err
}

func (s *brandService) GetChannels(brandID uint) ([]models.Channel, error) {
	channels, err := s.brandRepo.GetChannels(brandID)
	return nonNil(channels), err
}
