package migrations

import (
	"log"

	"nola_analytics/internal/models"

	"gorm.io/gorm"
)

// RunMigrations creates or updates the schema and the composite indexes the
// aggregation queries depend on. It never drops data.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Brand{},
		&models.Store{},
		&models.Channel{},
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.ProductSale{},
		&models.ItemProductSale{},
	)
	if err != nil {
		return err
	}

	if err := createIndexes(db); err != nil {
		log.Printf("Warning: Failed to create indexes: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createIndexes adds the composite indexes the report queries scan on.
func createIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_sales_status_created_at ON sales (sale_status_desc, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_store_status ON sales (store_id, sale_status_desc)`,
		`CREATE INDEX IF NOT EXISTS idx_product_sales_sale_product ON product_sales (sale_id, product_id)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
