package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Only completed sales participate in analytics aggregates.
const (
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCancelled = "CANCELLED"
)

type Sale struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	StoreID         uint            `json:"store_id" gorm:"not null;index"`
	ChannelID       uint            `json:"channel_id" gorm:"not null;index"`
	CustomerID      *uint           `json:"customer_id" gorm:"index"` // nil for guest sales
	CreatedAt       time.Time       `json:"created_at" gorm:"not null;index"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	TotalDiscount   decimal.Decimal `json:"total_discount" gorm:"type:numeric(12,2)"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee" gorm:"type:numeric(12,2)"`
	DeliverySeconds *int            `json:"delivery_seconds"`
	SaleStatusDesc  string          `json:"sale_status_desc" gorm:"not null;index"`
}

type ProductSale struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	SaleID     uint            `json:"sale_id" gorm:"not null;index"`
	ProductID  uint            `json:"product_id" gorm:"not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:numeric(12,2);not null"`
}

// A row here marks the parent line item as customized.
type ItemProductSale struct {
	ID            uint `json:"id" gorm:"primaryKey"`
	ProductSaleID uint `json:"product_sale_id" gorm:"not null;index"`
}

// SaleListItem is the read-only projection returned by the sales listing,
// with the joined store, channel and brand names.
type SaleListItem struct {
	ID              uint      `json:"id"`
	StoreID         uint      `json:"store_id"`
	ChannelID       uint      `json:"channel_id"`
	CustomerID      *uint     `json:"customer_id"`
	CreatedAt       time.Time `json:"created_at"`
	TotalAmount     float64   `json:"total_amount"`
	TotalDiscount   float64   `json:"total_discount"`
	DeliveryFee     float64   `json:"delivery_fee"`
	DeliverySeconds *int      `json:"delivery_seconds"`
	SaleStatusDesc  string    `json:"sale_status_desc"`
	StoreName       string    `json:"store_name"`
	ChannelName     string    `json:"channel_name"`
	BrandName       string    `json:"brand_name"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type PaginatedSales struct {
	Data       []SaleListItem `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

type SalesSummary struct {
	TotalSales        int64    `json:"total_sales"`
	TotalRevenue      *float64 `json:"total_revenue"`
	AverageTicket     *float64 `json:"average_ticket"`
	TotalDiscounts    *float64 `json:"total_discounts"`
	TotalDeliveryFees *float64 `json:"total_delivery_fees"`
	TotalStores       int64    `json:"total_stores"`
}
