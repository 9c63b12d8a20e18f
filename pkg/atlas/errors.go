package atlas

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents an error payload returned by the Atlas API.
type APIError struct {
	Detail     string   `json:"detail"               yaml:"detail"`
	Status     int      `json:"error"                yaml:"error"`
	ErrorCode  string   `json:"errorCode"            yaml:"errorCode"`
	Reason     string   `json:"reason"               yaml:"reason"`
	Parameters []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (code: %d)", e.ErrorCode, e.Detail, e.Status)
}

// HTTP status codes carried in Atlas error payloads.
const (
	errorStatusUnauthorized = 401
	errorStatusForbidden    = 403
	errorStatusNotFound     = 404
)

// Common static errors that can be wrapped with context.
var (
	ErrNoMoreItems        = errors.New("no more items")
	ErrConfigRequired     = errors.New("config is required")
	ErrPublicKeyRequired  = errors.New("public key is required")
	ErrPrivateKeyRequired = errors.New("private key is required")
	ErrGroupIDRequired    = errors.New("group ID is required")
	ErrUnknownResource    = errors.New("unknown API resource")
	ErrUnknownOperation   = errors.New("unknown API operation")
)

// PaginationLimitsError reports a page request outside the configured
// itemsPerPage bounds. It is raised before any network call.
type PaginationLimitsError struct {
	PageNum      int
	ItemsPerPage int
	Min          int
	Max          int
}

// Error implements the error interface.
func (e *PaginationLimitsError) Error() string {
	if e.PageNum < 1 {
		return fmt.Sprintf("pageNum %d is invalid: page numbers start at 1", e.PageNum)
	}

	return fmt.Sprintf("itemsPerPage %d is out of limits [%d, %d]", e.ItemsPerPage, e.Min, e.Max)
}

// PaginationError reports that a page fetch failed during a paginated
// traversal. Every underlying failure collapses into this one kind; the cause
// is retained as diagnostic context only.
type PaginationError struct {
	PageNum int
	cause   error
}

// Error implements the error interface.
func (e *PaginationError) Error() string {
	return fmt.Sprintf("pagination failed fetching page %d: %v", e.PageNum, e.cause)
}

// Unwrap exposes the underlying fetch error for diagnostics. Callers should
// branch on *PaginationError, not on the cause.
func (e *PaginationError) Unwrap() error {
	return e.cause
}

// ConfirmationRequiredError reports a destructive operation invoked without
// explicit confirmation. No network call is made.
type ConfirmationRequiredError struct {
	Operation string
	Resource  string
}

// Error implements the error interface.
func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("%s requires explicit confirmation to remove [%s]", e.Operation, e.Resource)
}

// IsNotFound checks if the error is an Atlas not-found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == errorStatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an Atlas authentication error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == errorStatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is an Atlas authorization error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == errorStatusForbidden
	}

	return false
}

// ParseAPIError parses an Atlas error payload from JSON.
func ParseAPIError(data []byte) (*APIError, error) {
	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal API error: %w", err)
	}

	return &apiErr, nil
}
