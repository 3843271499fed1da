package migrations

import (
	"github.com/osenco/osen-wc-tingg/models"
	"github.com/osenco/osen-wc-tingg/utils"
)

func MigratePaymentEvents() {
	utils.DB.AutoMigrate(&models.PaymentEvent{})
}
