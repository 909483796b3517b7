// Package payment provides validated parameter objects for initiating
// e-commerce transactions against a hosted checkout gateway. Parameter
// objects are constructed through validating constructors; a construction
// either fully succeeds or fails with an *Error naming the invalid field.
package payment

import "strings"

// Params is the base set of parameters shared by every payment kind: the
// checkout ID of the transaction and an optional payment brand. Both are
// immutable after construction.
type Params struct {
	checkoutID   string
	paymentBrand string
}

// NewParams validates and builds the base payment parameters. The checkout
// ID must be non-empty. The payment brand may be empty when the gateway is
// configured with automatic brand detection; when supplied it must not be
// blank.
func NewParams(checkoutID, paymentBrand string) (Params, error) {
	if strings.TrimSpace(checkoutID) == "" {
		return Params{}, newError(ErrorCodeInvalidCheckoutID, "checkoutID", "checkout ID must not be empty")
	}
	if paymentBrand != "" && strings.TrimSpace(paymentBrand) == "" {
		return Params{}, newError(ErrorCodeInvalidBrand, "paymentBrand", "payment brand must not be blank")
	}
	return Params{
		checkoutID:   checkoutID,
		paymentBrand: strings.TrimSpace(paymentBrand),
	}, nil
}

// CheckoutID returns the checkout ID of the transaction.
func (p Params) CheckoutID() string {
	return p.checkoutID
}

// PaymentBrand returns the payment brand, or the empty string when the
// brand is left for the gateway to detect.
func (p Params) PaymentBrand() string {
	return p.paymentBrand
}
