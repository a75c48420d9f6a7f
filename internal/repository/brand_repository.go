package repository

import (
	"nola_analytics/internal/models"

	"gorm.io/gorm"
)

type BrandRepository interface {
	GetAll() ([]models.Brand, error)
	GetStores(brandID uint) ([]models.Store, error)
	GetChannels(brandID uint) ([]models.Channel, error)
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) GetAll() ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Order("name").Find(&brands).Error
	return brands, err
}

func (r *brandRepository) GetStores(brandID uint) ([]models.Store, error) {
	var stores []models.Store
	err := r.db.Where("brand_id = ?", brandID).Order("name").Find(&stores).Error
	return stores, err
}

func (r *brandRepository) GetChannels(brandID uint) ([]models.Channel, error) {
	var channels []models.Channel
	err := r.db.Where("brand_id = ?", brandID).Order("name").Find(&channels).Error
	return channels, err
}
