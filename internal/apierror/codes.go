package apierror

// Problem type URIs used as the RFC 9457 "type" field
const (
	TypeValidation   = "urn:habitpulse:error:validation"
	TypeNotFound     = "urn:habitpulse:error:not_found"
	TypeRateLimit    = "urn:habitpulse:error:rate_limit"
	TypeUnauthorized = "urn:habitpulse:error:unauthorized"
	TypeInternal     = "urn:habitpulse:error:internal"
	TypeUnavailable  = "urn:habitpulse:error:unavailable"
	TypeInvalidID    = "urn:habitpulse:error:invalid_id"
	TypeBadRequest   = "urn:habitpulse:error:bad_request"
)

// Human-readable titles for each problem type
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleInternal     = "Internal Server Error"
	TitleUnavailable  = "Service Unavailable"
	TitleInvalidID    = "Invalid Identifier"
	TitleBadRequest   = "Bad Request"
)
