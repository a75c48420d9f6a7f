package models

type Product struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

type Customer struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	CustomerName string `json:"customer_name" gorm:"not null"`
	Email        string `json:"email"`
}
