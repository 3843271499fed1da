package main

import (
	"log"
	"time"

	"github.com/osenco/osen-wc-tingg/config"
	"github.com/osenco/osen-wc-tingg/handlers"
	"github.com/osenco/osen-wc-tingg/handlers/checkout"
	"github.com/osenco/osen-wc-tingg/handlers/webhook"
	"github.com/osenco/osen-wc-tingg/migrations"
	"github.com/osenco/osen-wc-tingg/seed"
	"github.com/osenco/osen-wc-tingg/store"
	"github.com/osenco/osen-wc-tingg/tingg"
	"github.com/osenco/osen-wc-tingg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	migrations.MigrateOrders()
	migrations.MigratePaymentEvents()

	// Seed Initial Data
	if cfg.SeedDemoData {
		if err := seed.SeedDemoOrder(); err != nil {
			log.Fatalf("Failed to seed demo order: %v", err)
		}
	}

	orders := store.NewGormOrderStore(utils.DB)
	events := store.NewGormEventLog(utils.DB)
	builder := tingg.NewBuilder(cfg.Gateway, tingg.DefaultCountries())

	checkoutHandler := checkout.NewHandler(builder, orders)
	webhookHandler := webhook.NewHandler(orders, events, webhook.NotifierFunc(utils.SendPaymentReceivedEmail))

	// Routes setup
	r.GET("/checkout/options", checkoutHandler.Options)
	r.POST("/orders/:id/checkout", handlers.AuthMiddleware(), checkoutHandler.Create)
	r.GET("/orders/:id/confirmation", checkoutHandler.Confirmation)
	r.POST("/tingg/payment-webhook", webhookHandler.Handle)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
