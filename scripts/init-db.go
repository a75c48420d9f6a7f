package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"nola_analytics/internal/config"
	"nola_analytics/internal/database"
	"nola_analytics/internal/migrations"
	"nola_analytics/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeds the database with synthetic multi-brand sales history so every
// dashboard report has data to aggregate. Uses a fixed seed so repeated runs
// produce the same dataset.
func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.ItemProductSale{},
		&models.ProductSale{},
		&models.Sale{},
		&models.Customer{},
		&models.Product{},
		&models.Channel{},
		&models.Store{},
		&models.Brand{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	fmt.Println("Database initialized successfully!")
}

func seed(db *gorm.DB) error {
	rng := rand.New(rand.NewSource(42))

	brands := []models.Brand{
		{Name: "Burguer Kingdom"},
		{Name: "Pizza Palace"},
	}
	if err := db.Create(&brands).Error; err != nil {
		return fmt.Errorf("failed to create brands: %w", err)
	}

	cities := []struct{ city, state string }{
		{"São Paulo", "SP"},
		{"Campinas", "SP"},
		{"Rio de Janeiro", "RJ"},
		{"Belo Horizonte", "MG"},
	}
	var stores []models.Store
	for _, brand := range brands {
		for i, loc := range cities {
			stores = append(stores, models.Store{
				Name:    fmt.Sprintf("%s - %s %02d", brand.Name, loc.city, i+1),
				City:    loc.city,
				State:   loc.state,
				BrandID: brand.ID,
			})
		}
	}
	if err := db.Create(&stores).Error; err != nil {
		return fmt.Errorf("failed to create stores: %w", err)
	}

	channelNames := []string{"iFood", "Rappi", "Balcão", "App Próprio"}
	var channels []models.Channel
	for _, brand := range brands {
		for _, name := range channelNames {
			channels = append(channels, models.Channel{Name: name, BrandID: brand.ID})
		}
	}
	if err := db.Create(&channels).Error; err != nil {
		return fmt.Errorf("failed to create channels: %w", err)
	}

	productNames := []string{
		"X-Burguer Clássico", "X-Bacon Duplo", "Batata Frita Grande",
		"Milkshake de Chocolate", "Pizza Margherita", "Pizza Calabresa",
		"Refrigerante Lata", "Combo Família", "Salada Caesar", "Brownie",
	}
	var products []models.Product
	for _, name := range productNames {
		products = append(products, models.Product{Name: name})
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to create products: %w", err)
	}

	var customers []models.Customer
	for i := 1; i <= 40; i++ {
		customers = append(customers, models.Customer{
			CustomerName: fmt.Sprintf("Cliente %02d", i),
			Email:        fmt.Sprintf("cliente%02d@example.com", i),
		})
	}
	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("failed to create customers: %w", err)
	}

	// Channels are scoped per brand, so pick sale channels from the matching
	// brand's slice.
	channelsByBrand := make(map[uint][]models.Channel)
	for _, ch := range channels {
		channelsByBrand[ch.BrandID] = append(channelsByBrand[ch.BrandID], ch)
	}

	fmt.Println("Creating sales history...")
	now := time.Now()
	for day := 60; day >= 0; day-- {
		date := now.AddDate(0, 0, -day)
		salesToday := 20 + rng.Intn(15)
		// A couple of spike days so the anomaly report has something to flag.
		if day == 10 || day == 25 {
			salesToday *= 3
		}
		for i := 0; i < salesToday; i++ {
			store := stores[rng.Intn(len(stores))]
			brandChannels := channelsByBrand[store.BrandID]
			channel := brandChannels[rng.Intn(len(brandChannels))]

			createdAt := time.Date(date.Year(), date.Month(), date.Day(),
				10+rng.Intn(13), rng.Intn(60), rng.Intn(60), 0, date.Location())

			sale := models.Sale{
				StoreID:        store.ID,
				ChannelID:      channel.ID,
				CreatedAt:      createdAt,
				TotalDiscount:  decimal.NewFromFloat(float64(rng.Intn(10))),
				DeliveryFee:    decimal.NewFromFloat(5 + float64(rng.Intn(10))),
				SaleStatusDesc: models.SaleStatusCompleted,
			}
			// Roughly 10% cancelled, 70% identified customers.
			if rng.Intn(10) == 0 {
				sale.SaleStatusDesc = models.SaleStatusCancelled
			}
			if rng.Intn(10) < 7 {
				customerID := customers[rng.Intn(len(customers))].ID
				sale.CustomerID = &customerID
			}
			if channel.Name != "Balcão" {
				seconds := 600 + rng.Intn(3000)
				sale.DeliverySeconds = &seconds
			}

			items := 1 + rng.Intn(3)
			total := decimal.Zero
			var lines []models.ProductSale
			for j := 0; j < items; j++ {
				product := products[rng.Intn(len(products))]
				quantity := 1 + rng.Intn(3)
				unitPrice := decimal.NewFromFloat(15 + float64(rng.Intn(40)))
				linePrice := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
				total = total.Add(linePrice)
				lines = append(lines, models.ProductSale{
					ProductID:  product.ID,
					Quantity:   quantity,
					TotalPrice: linePrice,
				})
			}
			sale.TotalAmount = total.Sub(sale.TotalDiscount)

			if err := db.Create(&sale).Error; err != nil {
				return fmt.Errorf("failed to create sale: %w", err)
			}
			for k := range lines {
				lines[k].SaleID = sale.ID
			}
			if err := db.Create(&lines).Error; err != nil {
				return fmt.Errorf("failed to create sale items: %w", err)
			}
			// Roughly a third of line items carry a customization.
			for _, line := range lines {
				if rng.Intn(3) == 0 {
					item := models.ItemProductSale{ProductSaleID: line.ID}
					if err := db.Create(&item).Error; err != nil {
						return fmt.Errorf("failed to create item customization: %w", err)
					}
				}
			}
		}
	}

	return nil
}
