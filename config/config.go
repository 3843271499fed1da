package config

import (
	"log"
	"os"
	"strconv"

	"github.com/osenco/osen-wc-tingg/tingg"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	SeedDemoData  bool
	Gateway       tingg.Config
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	sandbox := getEnv("TINGG_SANDBOX", "true") == "true"

	// Sandbox and live modes carry separate IV keys.
	ivKey := getEnv("TINGG_IV_KEY", "")
	if sandbox {
		ivKey = getEnv("TINGG_TEST_IV_KEY", "")
	}

	paymentPeriod, err := strconv.Atoi(getEnv("TINGG_PAYMENT_PERIOD", "1440"))
	if err != nil {
		log.Printf("Invalid TINGG_PAYMENT_PERIOD, falling back to 1440 minutes: %v", err)
		paymentPeriod = 1440
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		SeedDemoData:  getEnv("SEED_DEMO_DATA", "false") == "true",
		Gateway: tingg.Config{
			Enabled:       getEnv("TINGG_ENABLED", "false") == "true",
			Sandbox:       sandbox,
			Title:         getEnv("TINGG_TITLE", "Tingg"),
			Description:   getEnv("TINGG_DESCRIPTION", "Pay with banks, mobile money, and cards throughout Africa."),
			PaymentPeriod: paymentPeriod,
			ServiceCode:   getEnv("TINGG_SERVICE_CODE", ""),
			IVKey:         ivKey,
			SecretKey:     getEnv("TINGG_SECRET_KEY", ""),
			AccessKey:     getEnv("TINGG_ACCESS_KEY", ""),
			ShopPageURL:   getEnv("SHOP_PAGE_URL", ""),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
