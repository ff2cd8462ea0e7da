package model

import "fmt"

// Standard error codes surfaced by handlers.
const (
	ErrCodeItemNotFound     = "ITEM_NOT_FOUND"
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message so
// handlers can map business failures onto HTTP statuses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error for a single form field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("%s: %s", field, message),
	}
}

// Common domain errors
var (
	ErrItemNotFound     = NewDomainError(ErrCodeItemNotFound, "Item not found")
	ErrCategoryNotFound = NewDomainError(ErrCodeCategoryNotFound, "Category not found")
)
