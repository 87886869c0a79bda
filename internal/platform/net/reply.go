package net

import (
	"net/http"

	perr "dollarwords/internal/platform/errors"
)

// Envelope wraps every JSON response body
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// DataEnvelope wraps a successful payload
func DataEnvelope(status int, data any, reqID string) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// ErrorEnvelope maps err onto its status and envelope
func ErrorEnvelope(err error, reqID string) (int, Envelope) {
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Field:      w.Field,
		RequestID:  reqID,
	}
}
