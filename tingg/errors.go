package tingg

import "fmt"

// ValidationError rejects a checkout attempt before any payload is built.
// The message is safe to show to the shopper.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError means the gateway settings cannot produce a valid
// checkout request, e.g. missing credentials or no currency mapping.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "gateway configuration error: " + e.Reason
}

// CryptoError wraps a failure while encrypting the checkout payload.
// It always aborts the checkout attempt before a redirect URL is produced.
type CryptoError struct {
	Step string
	Err  error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("checkout encryption failed at %s: %v", e.Step, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}
