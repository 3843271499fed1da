// seed/seed.go
package seed

import (
	"errors"
	"log"

	"github.com/osenco/osen-wc-tingg/models"
	"github.com/osenco/osen-wc-tingg/utils"

	"gorm.io/gorm"
)

// SeedDemoOrder creates a sample product and a pending order billed to
// Kenya, for exercising the sandbox checkout flow end to end.
func SeedDemoOrder() error {
	var existingOrder models.Order
	err := utils.DB.Where("billing_email = ?", "demo@example.com").First(&existingOrder).Error
	if err == nil {
		log.Println("Demo order already exists. Skipping seeding.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	product := models.Product{
		Name:          "Widget",
		Price:         500,
		StockQuantity: 100,
	}
	if err := utils.DB.Create(&product).Error; err != nil {
		return err
	}

	order := models.Order{
		Status:           "pending",
		Total:            1000,
		BillingCountry:   "KE",
		BillingPhone:     "254700000000",
		BillingEmail:     "demo@example.com",
		BillingFirstName: "Demo",
		BillingLastName:  "Customer",
		Items: []models.OrderItem{
			{ProductID: product.ID, ProductName: product.Name, Quantity: 2},
		},
	}
	if err := utils.DB.Create(&order).Error; err != nil {
		return err
	}

	log.Printf("Demo order #%d seeded successfully.", order.ID)
	return nil
}
