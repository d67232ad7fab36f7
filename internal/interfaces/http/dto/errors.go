package dto

import (
	"net/http"
	"strings"
)

// Error codes surfaced by the API. The domain layer produces a flat
// taxonomy and each code maps to exactly one HTTP status.
const (
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeDuplicate    = "DUPLICATE"
	ErrCodeServer       = "SERVER_ERROR"
	ErrCodeBadData      = "BAD_DATA"
	ErrCodeUnauthorized = "UNAUTHORIZED"
)

// Token-related codes emitted by the authentication middleware
const (
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "INVALID_TOKEN"
	ErrCodeTokenRevoked = "TOKEN_REVOKED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeDuplicate:    http.StatusConflict,
	ErrCodeServer:       http.StatusInternalServerError,
	ErrCodeBadData:      http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,

	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeTokenRevoked: http.StatusUnauthorized,
}

// GetHTTPStatus returns the HTTP status code for an error code. Entity
// validation codes (INVALID_EMAIL, INVALID_STREET, ...) are all client
// faults; anything unrecognized is treated as a server error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
