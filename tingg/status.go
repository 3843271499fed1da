package tingg

// RequestStatus is a payment status code reported by the Tingg gateway.
type RequestStatus int

const (
	// StatusPartiallyPaid means the customer paid part of the requested amount.
	StatusPartiallyPaid RequestStatus = 176
	// StatusPaidInFull means the requested amount was paid in full.
	StatusPaidInFull RequestStatus = 178
	// StatusPaymentAccepted is the code this service echoes back to
	// acknowledge a processed notification.
	StatusPaymentAccepted RequestStatus = 183
)

// Handled reports whether a notification carrying this status triggers an
// order transition. Every other code is ignored without an acknowledgement,
// matching what the gateway expects from this integration.
func (s RequestStatus) Handled() bool {
	return s == StatusPartiallyPaid || s == StatusPaidInFull
}
