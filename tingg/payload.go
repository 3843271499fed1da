package tingg

// CheckoutPayload is the checkout request sent to the Tingg express
// checkout, encrypted as the params query parameter. Field order matches
// the order the builder assembles them in; the json tags are the exact
// names the gateway parses.
type CheckoutPayload struct {
	AccessKey             string  `json:"accessKey"`
	AccountNumber         uint    `json:"accountNumber"`
	ServiceCode           string  `json:"serviceCode"`
	RequestAmount         float64 `json:"requestAmount"`
	MSISDN                string  `json:"MSISDN"`
	MerchantTransactionID uint    `json:"merchantTransactionID"`
	CustomerEmail         string  `json:"customerEmail"`
	CustomerLastName      string  `json:"customerLastName"`
	CustomerFirstName     string  `json:"customerFirstName"`
	RequestDescription    string  `json:"requestDescription"`
	CurrencyCode          string  `json:"currencyCode"`
	DueDate               string  `json:"dueDate"`
	FailRedirectURL       string  `json:"failRedirectUrl"`
	SuccessRedirectURL    string  `json:"successRedirectUrl"`
	PaymentWebhookURL     string  `json:"paymentWebhookUrl"`
}

// RedirectInstruction tells the storefront where to send the shopper.
type RedirectInstruction struct {
	Result   string `json:"result"`
	Redirect string `json:"redirect"`
}
