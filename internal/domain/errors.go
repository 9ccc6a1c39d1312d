package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Error families
	ErrMsgSyntax     = "syntax error"
	ErrMsgPermission = "permission denied"
	ErrMsgNotFound   = "not found"

	// Catalog errors
	ErrMsgItemNotFound = "item not found"

	// Character errors
	ErrMsgCharacterNotFound     = "character not found"
	ErrMsgInventoryItemNotFound = "no such item in inventory"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Roleplay errors
	ErrMsgBioNotFound = "bio not found"

	// Role errors
	ErrMsgRoleNotFound = "role not found"

	// Printer errors
	ErrMsgDocumentNotFound = "document not found"
)

// Error families. Every user-facing error wraps exactly one of these so the
// dispatcher can decide how to report it.
var (
	ErrSyntax     = errors.New(ErrMsgSyntax)
	ErrPermission = errors.New(ErrMsgPermission)
	ErrNotFound   = errors.New(ErrMsgNotFound)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound          = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgItemNotFound)
	ErrCharacterNotFound     = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgCharacterNotFound)
	ErrInventoryItemNotFound = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgInventoryItemNotFound)
	ErrBioNotFound           = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgBioNotFound)
	ErrRoleNotFound          = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgRoleNotFound)
	ErrDocumentNotFound      = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgDocumentNotFound)
	ErrInsufficientFunds     = fmt.Errorf("%w: %s", ErrPermission, ErrMsgInsufficientFunds)
)

// UserError is a failure the invoking user can act on. Message is shown as-is.
type UserError struct {
	Kind    error
	Message string
}

func (e *UserError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *UserError) Unwrap() error { return e.Kind }

// SyntaxError reports malformed or missing arguments and payloads.
func SyntaxError(format string, args ...any) error {
	return &UserError{Kind: ErrSyntax, Message: fmt.Sprintf(format, args...)}
}

// PermissionError reports an operation the caller is not allowed to perform,
// including lack of funds or stock.
func PermissionError(format string, args ...any) error {
	return &UserError{Kind: ErrPermission, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is returned by lookups that may carry fuzzy suggestions.
type NotFoundError struct {
	Kind        error
	Query       string
	Suggestions []string
}

// NewNotFoundError builds a NotFoundError for the given sentinel.
func NewNotFoundError(kind error, query string, suggestions []string) *NotFoundError {
	return &NotFoundError{Kind: kind, Query: query, Suggestions: suggestions}
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s", strings.TrimPrefix(e.Kind.Error(), ErrMsgNotFound+": "), e.Query)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(e.Suggestions, ", ") + ")"
	}
	return msg
}

func (e *NotFoundError) Unwrap() error { return e.Kind }

// HasSuggestions reports whether fuzzy matching found near misses.
func (e *NotFoundError) HasSuggestions() bool { return len(e.Suggestions) > 0 }
