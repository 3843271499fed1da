package tingg

// Country holds the currency and ISO code Tingg expects for a supported market.
type Country struct {
	CurrencyCode string
	CountryCode  string
}

// CountryTable maps a country name to its Tingg currency/ISO pair.
// The table is built once at startup and never mutated afterwards.
type CountryTable map[string]Country

// DefaultCountries returns the markets the Tingg checkout currently supports.
func DefaultCountries() CountryTable {
	return CountryTable{
		"kenya":      {CurrencyCode: "KES", CountryCode: "KE"},
		"tanzania":   {CurrencyCode: "TZS", CountryCode: "TZ"},
		"uganda":     {CurrencyCode: "UGX", CountryCode: "UG"},
		"ghana":      {CurrencyCode: "GHS", CountryCode: "GH"},
		"zambia":     {CurrencyCode: "ZMW", CountryCode: "ZM"},
		"zimbabwe":   {CurrencyCode: "USD", CountryCode: "ZW"},
		"mozambique": {CurrencyCode: "MZN", CountryCode: "MZ"},
		"nigeria":    {CurrencyCode: "NGN", CountryCode: "NG"},
	}
}

// ByCode looks up a country by its ISO country code.
func (t CountryTable) ByCode(countryCode string) (Country, bool) {
	for _, country := range t {
		if country.CountryCode == countryCode {
			return country, true
		}
	}
	return Country{}, false
}

// Supports reports whether the given ISO country code is a supported market.
func (t CountryTable) Supports(countryCode string) bool {
	_, ok := t.ByCode(countryCode)
	return ok
}
