// Package compat preserves the older brand-parameterized validation
// surface. The checks delegate to the same core logic as package validate
// but additionally consult fixed per-brand number and CVV length tables.
// New code should use payment and payment/validate directly.
package compat

import (
	"strings"

	"github.com/hostedpay/payments-go/payment"
	"github.com/hostedpay/payments-go/payment/validate"
)

// Brand enumerates the card networks known to the legacy API.
type Brand int

const (
	BrandUnknown Brand = iota
	BrandVisa
	BrandMasterCard
	BrandAmex
	BrandDinersClub
	BrandDiscover
	BrandJCB
	BrandUnionPay
	BrandMaestro
)

var brandNames = map[Brand]string{
	BrandVisa:       "VISA",
	BrandMasterCard: "MASTER",
	BrandAmex:       "AMEX",
	BrandDinersClub: "DINERS",
	BrandDiscover:   "DISCOVER",
	BrandJCB:        "JCB",
	BrandUnionPay:   "UNIONPAY",
	BrandMaestro:    "MAESTRO",
}

// String returns the payment brand identifier used on the wire, e.g.
// "MASTER" for BrandMasterCard, or "" for BrandUnknown.
func (b Brand) String() string {
	return brandNames[b]
}

// ParseBrand maps a payment brand string to a Brand, case-insensitively.
// Unrecognized brands map to BrandUnknown.
func ParseBrand(paymentBrand string) Brand {
	switch strings.ToUpper(strings.TrimSpace(paymentBrand)) {
	case "VISA":
		return BrandVisa
	case "MASTER", "MASTERCARD":
		return BrandMasterCard
	case "AMEX", "AMERICANEXPRESS":
		return BrandAmex
	case "DINERS", "DINERSCLUB":
		return BrandDinersClub
	case "DISCOVER":
		return BrandDiscover
	case "JCB":
		return BrandJCB
	case "UNIONPAY", "CHINAUNIONPAY":
		return BrandUnionPay
	case "MAESTRO":
		return BrandMaestro
	default:
		return BrandUnknown
	}
}

// numberLengths lists the digit counts each network issues. Brands missing
// from the table fall back to the generic 10-19 digit rule.
var numberLengths = map[Brand][]int{
	BrandVisa:       {13, 16, 19},
	BrandMasterCard: {16},
	BrandAmex:       {15},
	BrandDinersClub: {14, 16, 19},
	BrandDiscover:   {16, 19},
	BrandJCB:        {16, 19},
	BrandUnionPay:   {16, 17, 18, 19},
	BrandMaestro:    {12, 13, 14, 15, 16, 17, 18, 19},
}

// IsNumberValidForBrand reports whether the number passes the Luhn test and
// the brand's number length table.
//
// Deprecated: Use validate.IsNumberValid instead.
func IsNumberValidForBrand(number string, b Brand) bool {
	if !validate.IsNumberValid(number, true) {
		return false
	}
	lengths, ok := numberLengths[b]
	if !ok {
		return true
	}
	n := len(validate.NormalizeNumber(number))
	for _, l := range lengths {
		if n == l {
			return true
		}
	}
	return false
}

// IsNumberValidForPaymentBrand reports whether the number passes the Luhn
// test and the length table of the named payment brand.
//
// Deprecated: Use validate.IsNumberValid instead.
func IsNumberValidForPaymentBrand(number, paymentBrand string) bool {
	return IsNumberValidForBrand(number, ParseBrand(paymentBrand))
}

// IsCvvValidForBrand reports whether the CVV has the length the brand
// requires: 4 digits for Amex, 3 for the other networks. Maestro cards may
// omit the CVV entirely.
//
// Deprecated: Use validate.IsCvvValid instead.
func IsCvvValidForBrand(cvv string, b Brand) bool {
	switch b {
	case BrandAmex:
		return validate.IsDigits(cvv) && len(cvv) == 4
	case BrandMaestro:
		return cvv == "" || (validate.IsDigits(cvv) && len(cvv) == 3)
	case BrandUnknown:
		return validate.IsCvvValid(cvv)
	default:
		return validate.IsDigits(cvv) && len(cvv) == 3
	}
}

// IsCvvValidForPaymentBrand reports whether the CVV has the length the
// named payment brand requires.
//
// Deprecated: Use validate.IsCvvValid instead.
func IsCvvValidForPaymentBrand(cvv, paymentBrand string) bool {
	return IsCvvValidForBrand(cvv, ParseBrand(paymentBrand))
}

// NewCardParamsWithBrand builds card payment parameters from an enumerated
// brand. BrandUnknown leaves the brand unset for the gateway to detect.
//
// Deprecated: Use payment.NewCardParams instead.
func NewCardParamsWithBrand(checkoutID string, b Brand, holder, number, expiryMonth, expiryYear, cvv string) (*payment.CardParams, error) {
	return payment.NewCardParams(checkoutID, b.String(), holder, number, expiryMonth, expiryYear, cvv)
}
