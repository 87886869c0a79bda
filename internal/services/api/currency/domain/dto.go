// Package domain holds DTOs and ports for the currency http and service layers
package domain

import "encoding/json"

// ValueInput carries one amount to convert. Any JSON value is accepted;
// only numbers convert, everything else comes back as invalid
type ValueInput struct {
	Value json.RawMessage `json:"value" validate:"required" swaggertype:"number" example:"1234.38"`
}

// Conversion is the result of converting one value
type Conversion struct {
	Input string `json:"input"           example:"1234.38"`
	Words string `json:"words,omitempty" example:"one thousand two hundred thirty four and 38/100 dollars"`
	Valid bool   `json:"valid"           example:"true"`
}

// QueryRecord is a conversion logged on a session
type QueryRecord struct {
	Index int `json:"index" example:"0"`
	Conversion
}

// Session describes a query log owned by one caller; Queries is the number
// of records logged when the session was read
type Session struct {
	ID        string `json:"id"         example:"9b2f3c1e-6a61-4f6b-a0d2-6f8f5b8e2d11"`
	CreatedAt string `json:"created_at" example:"2025-09-03T13:00:00Z"`
	Queries   int    `json:"queries"    example:"0"`
}

// History is the rendered text dump of a session
type History struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text" example:"CurrencyContainer queries\n\t#0. {value = 1.01, currency = one and 01/100 dollars}\n"`
}

// Policy reports the active conversion bounds and magnitude words
type Policy struct {
	Min        float64  `json:"min"        example:"-10000000000000"`
	Max        float64  `json:"max"        example:"10000000000000"`
	Magnitudes []string `json:"magnitudes" example:"quadrillion,billion,million,thousand"`
}
