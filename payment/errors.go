package payment

import "fmt"

// ErrorCode identifies which parameter failed validation.
type ErrorCode string

const (
	ErrorCodeInvalidCheckoutID  ErrorCode = "invalid-checkout-id"
	ErrorCodeInvalidBrand       ErrorCode = "invalid-brand"
	ErrorCodeInvalidHolder      ErrorCode = "invalid-holder"
	ErrorCodeInvalidNumber      ErrorCode = "invalid-number"
	ErrorCodeInvalidExpiryMonth ErrorCode = "invalid-expiry-month"
	ErrorCodeInvalidExpiryYear  ErrorCode = "invalid-expiry-year"
	ErrorCodeInvalidCVV         ErrorCode = "invalid-cvv"
)

// Error reports a single invalid payment parameter. Construction stops at
// the first invalid field, so an Error always names exactly one field. The
// description is suitable for surfacing to end users or logs.
type Error struct {
	Code        ErrorCode
	Field       string
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

func newError(code ErrorCode, field, description string) *Error {
	return &Error{Code: code, Field: field, Description: description}
}
