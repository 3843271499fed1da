package migrations

import (
	"github.com/osenco/osen-wc-tingg/models"
	"github.com/osenco/osen-wc-tingg/utils"
)

func MigrateOrders() {
	utils.DB.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}, &models.OrderNote{})
}
