package repository

import (
	"fmt"
	"time"

	"nola_analytics/internal/models"

	"gorm.io/gorm"
)

type SalesRepository interface {
	List(brandID, storeID, channelID *uint, limit, offset int) ([]models.SaleListItem, error)
	Count(brandID, storeID, channelID *uint) (int64, error)
	Summary(brandID *uint, startDate, endDate *time.Time) (*models.SalesSummary, error)
}

type salesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) SalesRepository {
	return &salesRepository{db: db}
}

// listFilters appends the optional listing predicates in a fixed order.
func listFilters(query string, args []interface{}, brandID, storeID, channelID *uint) (string, []interface{}) {
	if brandID != nil {
		query += ` AND st.brand_id = ?`
		args = append(args, *brandID)
	}
	if storeID != nil {
		query += ` AND s.store_id = ?`
		args = append(args, *storeID)
	}
	if channelID != nil {
		query += ` AND s.channel_id = ?`
		args = append(args, *channelID)
	}
	return query, args
}

func (r *salesRepository) List(brandID, storeID, channelID *uint, limit, offset int) ([]models.SaleListItem, error) {
	query := `
		SELECT
			s.*,
			st.name as store_name,
			ch.name as channel_name,
			b.name as brand_name
		FROM sales s
		LEFT JOIN stores st ON s.store_id = st.id
		LEFT JOIN channels ch ON s.channel_id = ch.id
		LEFT JOIN brands b ON st.brand_id = b.id
		WHERE 1=1`
	var args []interface{}

	query, args = listFilters(query, args, brandID, storeID, channelID)
	query += ` ORDER BY s.created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var rows []models.SaleListItem
	err := r.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

func (r *salesRepository) Count(brandID, storeID, channelID *uint) (int64, error) {
	query := `
		SELECT COUNT(*) as total
		FROM sales s
		LEFT JOIN stores st ON s.store_id = st.id
		WHERE 1=1`
	var args []interface{}

	query, args = listFilters(query, args, brandID, storeID, channelID)

	var total int64
	err := r.db.Raw(query, args...).Scan(&total).Error
	return total, err
}

func (r *salesRepository) Summary(brandID *uint, startDate, endDate *time.Time) (*models.SalesSummary, error) {
	storesFilter := ""
	var args []interface{}
	if brandID != nil {
		storesFilter = ` WHERE brand_id = ?`
		args = append(args, *brandID)
	}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*) as total_sales,
			SUM(s.total_amount) as total_revenue,
			AVG(s.total_amount) as average_ticket,
			SUM(s.total_discount) as total_discounts,
			SUM(s.delivery_fee) as total_delivery_fees,
			(SELECT COUNT(*) FROM stores%s) as total_stores
		FROM sales s
		LEFT JOIN stores st ON s.store_id = st.id
		WHERE s.sale_status_desc = 'COMPLETED'`, storesFilter)

	if brandID != nil {
		query += ` AND st.brand_id = ?`
		args = append(args, *brandID)
	}
	if startDate != nil {
		query += ` AND s.created_at >= ?`
		args = append(args, *startDate)
	}
	if endDate != nil {
		query += ` AND s.created_at <= ?`
		args = append(args, *endDate)
	}

	var row models.SalesSummary
	err := r.db.Raw(query, args...).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
