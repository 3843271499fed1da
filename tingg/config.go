package tingg

import "strings"

// Fixed express checkout endpoints. The sandbox flag picks between them.
const (
	sandboxCheckoutURL = "https://beep2.cellulant.com:9212/checkout/v2/express/"
	liveCheckoutURL    = "https://mula.africa/v2/express/"
)

// Config carries the merchant's gateway settings. It is built once at
// startup and treated as immutable afterwards.
type Config struct {
	Enabled     bool
	Sandbox     bool
	Title       string
	Description string

	// PaymentPeriod is the number of minutes before a checkout request
	// on an order expires.
	PaymentPeriod int

	ServiceCode string
	IVKey       string
	SecretKey   string
	AccessKey   string

	// ShopPageURL is where the shopper lands after a failed payment.
	ShopPageURL string
	// PublicBaseURL is this service's externally reachable base URL,
	// used to compose the success redirect and webhook URLs.
	PublicBaseURL string
}

// CheckoutURL returns the express checkout endpoint for the configured mode.
func (c Config) CheckoutURL() string {
	if c.Sandbox {
		return sandboxCheckoutURL
	}
	return liveCheckoutURL
}

// Validate reports a ConfigurationError when the settings cannot produce a
// checkout request. A misconfigured gateway must fail the attempt outright
// rather than redirect with blank fields.
func (c Config) Validate() error {
	switch {
	case c.AccessKey == "":
		return &ConfigurationError{Reason: "access key is not set"}
	case c.SecretKey == "":
		return &ConfigurationError{Reason: "secret key is not set"}
	case c.IVKey == "":
		return &ConfigurationError{Reason: "iv key is not set"}
	case c.ServiceCode == "":
		return &ConfigurationError{Reason: "service code is not set"}
	case c.PaymentPeriod <= 0:
		return &ConfigurationError{Reason: "payment period must be positive"}
	case strings.TrimSpace(c.PublicBaseURL) == "":
		return &ConfigurationError{Reason: "public base URL is not set"}
	}
	return nil
}
