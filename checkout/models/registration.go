package models

import "time"

// RegisterCardParams is the request to attach card parameters to a checkout
// session. PaymentBrand may be omitted only when the session has brand
// detection enabled.
type RegisterCardParams struct {
	PaymentBrand         string `json:"payment_brand,omitempty"`
	Holder               string `json:"holder"`
	Number               string `json:"number"`
	ExpiryMonth          string `json:"expiry_month"`
	ExpiryYear           string `json:"expiry_year"`
	CVV                  string `json:"cvv,omitempty"`
	CountryCode          string `json:"country_code,omitempty"`
	MobilePhone          string `json:"mobile_phone,omitempty"`
	Tokenize             bool   `json:"tokenize"`
	NumberOfInstallments *int   `json:"number_of_installments,omitempty"`
}

// Registration is the stored form of accepted card parameters. The card
// number is never stored: only its last four digits and a keyed hash.
type Registration struct {
	ID           string `json:"id"`
	SessionID    string `json:"session_id"`
	PaymentBrand string `json:"payment_brand,omitempty"`
	Holder       string `json:"holder"`
	Last4        string `json:"last4"`
	ExpiryMonth  string `json:"expiry_month"`
	ExpiryYear   string `json:"expiry_year"`
	CountryCode  string `json:"country_code,omitempty"`
	MobilePhone  string `json:"mobile_phone,omitempty"`
	// Token is set when tokenization was requested; it references the
	// stored payment information for future transactions.
	Token        string    `json:"token,omitempty"`
	Installments *int      `json:"number_of_installments,omitempty"`
	NumberHash   []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CardCheck is a single live form-validation request. Field names a card
// parameter; Value carries it. The "expiry" field uses Month and Year
// instead of Value. LuhnCheck applies to the "number" field and defaults
// to true.
type CardCheck struct {
	Field     string `json:"field"`
	Value     string `json:"value,omitempty"`
	Month     string `json:"month,omitempty"`
	Year      string `json:"year,omitempty"`
	LuhnCheck *bool  `json:"luhn_check,omitempty"`
}

// CardCheckResult is the answer to a CardCheck.
type CardCheckResult struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
}
