package apierror

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the RFC 9457 media type
const ContentTypeProblemJSON = "application/problem+json"

// RequestIDKey is the gin context key the request ID middleware writes to
const RequestIDKey = "request_id"

// WriteProblem renders p as the response and aborts the chain. Instance
// defaults to the request path.
func WriteProblem(c *gin.Context, p *ProblemDetails) {
	if p.Instance == "" && c.Request != nil {
		p.Instance = c.Request.URL.Path
	}
	h := c.Writer.Header()
	h.Set("Content-Type", ContentTypeProblemJSON)
	if p.RetryAfter != nil {
		h.Set("Retry-After", strconv.Itoa(*p.RetryAfter))
	}
	c.AbortWithStatusJSON(p.Status, p)
}

// GetRequestID prefers the ID stored by the middleware over the raw header
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

func newProblem(typ, title string, status int, requestID, detail, userMessage string) *ProblemDetails {
	return &ProblemDetails{
		Type:        typ,
		Title:       title,
		Status:      status,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

func NewBadRequestError(requestID, detail, userMessage string) *ProblemDetails {
	return newProblem(TypeBadRequest, TitleBadRequest, http.StatusBadRequest, requestID, detail, userMessage)
}

// NewValidationError lists every rejected field in one response
func NewValidationError(requestID string, errs []FieldError) *ProblemDetails {
	p := newProblem(TypeValidation, TitleValidation, http.StatusBadRequest, requestID,
		"One or more fields failed validation", "Please check your input and try again")
	p.Errors = errs
	return p
}

// NewInvalidIDError rejects a path identifier that does not parse as a UUID
func NewInvalidIDError(requestID, field, value string) *ProblemDetails {
	p := newProblem(TypeInvalidID, TitleInvalidID, http.StatusBadRequest, requestID,
		fmt.Sprintf("%s %q is not a valid identifier", field, value), "Invalid identifier format")
	p.Errors = []FieldError{{Field: field, Message: "must be a valid UUID", Code: "invalid_uuid"}}
	return p
}

// NewUnauthorizedError tells the client to sign in. An empty detail gets a generic one.
func NewUnauthorizedError(requestID, detail string) *ProblemDetails {
	if detail == "" {
		detail = "Authentication is required to access this resource"
	}
	p := newProblem(TypeUnauthorized, TitleUnauthorized, http.StatusUnauthorized, requestID,
		detail, "Please sign in to continue")
	p.Action = "authenticate"
	return p
}

// NewNotFoundError also covers records owned by another user
func NewNotFoundError(requestID, resource, id string) *ProblemDetails {
	return newProblem(TypeNotFound, TitleNotFound, http.StatusNotFound, requestID,
		fmt.Sprintf("%s %s does not exist", resource, id),
		fmt.Sprintf("That %s could not be found", resource))
}

func NewRateLimitError(requestID string, retryAfter int) *ProblemDetails {
	p := newProblem(TypeRateLimit, TitleRateLimit, http.StatusTooManyRequests, requestID,
		fmt.Sprintf("Request limit reached, retry in %ds", retryAfter),
		"Too many requests. Please wait before trying again.")
	p.RetryAfter = &retryAfter
	return p
}

// NewInternalError never carries the cause; callers log it
func NewInternalError(requestID string) *ProblemDetails {
	return newProblem(TypeInternal, TitleInternal, http.StatusInternalServerError, requestID,
		"An unexpected error occurred", "Something went wrong. Please try again later.")
}

// NewServiceUnavailableError is returned while the store cannot be reached
func NewServiceUnavailableError(requestID string, retryAfter int) *ProblemDetails {
	p := newProblem(TypeUnavailable, TitleUnavailable, http.StatusServiceUnavailable, requestID,
		"The data store is unreachable", "Service is temporarily unavailable. Please try again later.")
	p.RetryAfter = &retryAfter
	return p
}
