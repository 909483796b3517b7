package models

import "time"

// Session is a checkout session opened before the shopper submits card
// details. Card parameters are registered against a session by ID.
type Session struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	// BrandDetectionEnabled allows card parameters to be registered
	// without a payment brand; the gateway resolves the brand later.
	BrandDetectionEnabled bool      `json:"brand_detection_enabled"`
	CreatedAt             time.Time `json:"created_at"`
}

// CreateSession is the request to open a checkout session.
type CreateSession struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	BrandDetection bool   `json:"brand_detection"`
}
