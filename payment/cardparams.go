package payment

import (
	"github.com/hostedpay/payments-go/payment/validate"
)

// CardParams represents the set of card parameters needed for performing an
// e-commerce card transaction. The required card fields are validated at
// construction and immutable afterwards. The auxiliary fields (country
// code, mobile phone, tokenization flag, installments) may be set freely
// after construction and are not re-validated; instances shared across
// goroutines need external synchronization for those fields.
type CardParams struct {
	Params

	holder      string
	number      string
	expiryMonth string
	expiryYear  string
	cvv         string

	// CountryCode is the customer's numeric country code.
	CountryCode string
	// MobilePhone is the customer's mobile number, digits only.
	MobilePhone string
	// TokenizationEnabled requests that the payment information be stored
	// for future use. Default is false.
	TokenizationEnabled bool
	// NumberOfInstallments is the number of installments the payment
	// should be split into; nil when not requested.
	NumberOfInstallments *int
}

// NewCardParams validates the supplied fields and builds card payment
// parameters. The number may contain spaces and dashes; it is kept as
// supplied, validation strips them internally. The CVV may be empty when
// the gateway does not require it. On the first failing check construction
// aborts with an *Error identifying the field; no partial object is
// returned.
func NewCardParams(checkoutID, paymentBrand, holder, number, expiryMonth, expiryYear, cvv string) (*CardParams, error) {
	base, err := NewParams(checkoutID, paymentBrand)
	if err != nil {
		return nil, err
	}
	if !validate.IsHolderValid(holder) {
		return nil, newError(ErrorCodeInvalidHolder, "holder", "holder name must be longer than 3 and shorter than 128 characters")
	}
	if !validate.IsNumberValid(number, true) {
		return nil, newError(ErrorCodeInvalidNumber, "number", "card number must consist of 10 to 19 digits and pass the Luhn check")
	}
	if !validate.IsExpiryMonthValid(expiryMonth) {
		return nil, newError(ErrorCodeInvalidExpiryMonth, "expiryMonth", "expiry month must be in the format MM (01-12)")
	}
	if !validate.IsExpiryYearValid(expiryYear) {
		return nil, newError(ErrorCodeInvalidExpiryYear, "expiryYear", "expiry year must be in the format YYYY")
	}
	if cvv != "" && !validate.IsCvvValid(cvv) {
		return nil, newError(ErrorCodeInvalidCVV, "cvv", "CVV must be a 3 or 4 digit number")
	}

	return &CardParams{
		Params:      base,
		holder:      holder,
		number:      number,
		expiryMonth: expiryMonth,
		expiryYear:  expiryYear,
		cvv:         cvv,
	}, nil
}

// NewCardParamsAutoBrand builds card payment parameters without a payment
// brand. Use it only when the gateway is configured with automatic brand
// detection; the brand is left unset for the gateway to resolve.
func NewCardParamsAutoBrand(checkoutID, holder, number, expiryMonth, expiryYear, cvv string) (*CardParams, error) {
	return NewCardParams(checkoutID, "", holder, number, expiryMonth, expiryYear, cvv)
}

// Holder returns the name of the card holder.
func (p *CardParams) Holder() string {
	return p.holder
}

// Number returns the card number exactly as supplied, including any spaces
// and dashes.
func (p *CardParams) Number() string {
	return p.number
}

// ExpiryMonth returns the card expiry month in the format MM.
func (p *CardParams) ExpiryMonth() string {
	return p.expiryMonth
}

// ExpiryYear returns the card expiry year in the format YYYY.
func (p *CardParams) ExpiryYear() string {
	return p.expiryYear
}

// CVV returns the CVV code, or the empty string when not provided.
func (p *CardParams) CVV() string {
	return p.cvv
}
