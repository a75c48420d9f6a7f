package models

type Brand struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

type Store struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	City    string `json:"city"`
	State   string `json:"state"`
	BrandID uint   `json:"brand_id" gorm:"not null;index"`
}

type Channel struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	BrandID uint   `json:"brand_id" gorm:"not null;index"`
}
