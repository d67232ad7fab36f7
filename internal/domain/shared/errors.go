package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. The taxonomy is flat: every failure in the call
// path maps onto one of these and is translated to HTTP at the request
// boundary without modification along the way.
var (
	ErrNotFound     = NewDomainError("NOT_FOUND", "Resource not found")
	ErrDuplicate    = NewDomainError("DUPLICATE", "Resource already exists")
	ErrServer       = NewDomainError("SERVER_ERROR", "Internal server error")
	ErrBadData      = NewDomainError("BAD_DATA", "Malformed or unparseable data")
	ErrUnauthorized = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
)
