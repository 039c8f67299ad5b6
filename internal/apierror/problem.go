// Package apierror renders RFC 9457 problem details for the habitpulse API.
package apierror

// ProblemDetails is an RFC 9457 problem response.
// See https://www.rfc-editor.org/rfc/rfc9457.html
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	// Extensions
	RequestID   string       `json:"request_id,omitempty"`
	UserMessage string       `json:"user_message,omitempty"` // safe to show in the UI
	RetryAfter  *int         `json:"retry_after,omitempty"`  // seconds, for 429 and 503
	Action      string       `json:"action,omitempty"`
	Errors      []FieldError `json:"errors,omitempty"`
}

// FieldError is a validation failure of one request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}
