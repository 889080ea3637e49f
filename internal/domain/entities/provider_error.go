package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProviderRequestError is returned by the PayPal client for every failed call:
// transport errors, non-2xx answers and unreadable bodies. Body keeps the raw
// provider answer so it can be logged by the caller.
type ProviderRequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ProviderRequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("paypal request %s %s failed: status=%d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("paypal request %s %s failed: %v", e.Method, e.Path, e.Err)
}

func (e *ProviderRequestError) Unwrap() error { return e.Err }

// ErrorResponse is PayPal's error body.
type ErrorResponse struct {
	Name            string        `json:"name"`
	Message         string        `json:"message"`
	DebugID         string        `json:"debug_id"`
	InformationLink string        `json:"information_link"`
	Details         []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ParseErrorResponse decodes an error body. It returns nil when the body is not
// a PayPal error document.
func ParseErrorResponse(body []byte) *ErrorResponse {
	if len(body) == 0 {
		return nil
	}
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil
	}
	// OAuth errors use error/error_description instead of name/message.
	if er.Name == "" && er.Message == "" {
		var oauth struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		if err := json.Unmarshal(body, &oauth); err != nil || oauth.Error == "" {
			return nil
		}
		er.Name = oauth.Error
		er.Message = oauth.Description
	}
	return &er
}

// DetailsString flattens the details for a log line.
func (e ErrorResponse) DetailsString() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Issue)
	}
	return strings.Join(parts, "; ")
}
