package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a uniqueness violation, e.g. a leader or project
// that is already bound to another team
type ConflictError struct {
	Entity  string
	Context string // Additional context like "is already assigned to another team"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// IOFailureError represents a transfer medium that could not be read or written
type IOFailureError struct {
	Operation string
	Err       error
}

func (e *IOFailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("io failure during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("io failure during %s", e.Operation)
}

func (e *IOFailureError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrWorkerNotFound     = &NotFoundError{Entity: "worker"}
	ErrProgrammerNotFound = &NotFoundError{Entity: "programmer"}
	ErrLeaderNotFound     = &NotFoundError{Entity: "leader"}
	ErrProjectNotFound    = &NotFoundError{Entity: "project"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrLanguageNotFound   = &NotFoundError{Entity: "language"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
)

// Conflict Errors (uniqueness invariants)
var (
	ErrLeaderAssigned  = &ConflictError{Entity: "leader", Context: "is already assigned to another team"}
	ErrProjectAssigned = &ConflictError{Entity: "project", Context: "is already assigned to another team"}
	ErrUserExists      = &ConflictError{Entity: "user", Context: "already exists with this username or email"}
	ErrLanguageExists  = &ConflictError{Entity: "language", Context: "already exists with this name"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "incorrect username or password"}
	ErrUserInactive       = &AuthenticationError{Message: "user account is inactive"}
	ErrAdminRequired      = &AuthorizationError{Message: "admin role required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsIOFailure checks if an error is an IOFailureError
func IsIOFailure(err error) bool {
	var ioErr *IOFailureError
	return errors.As(err, &ioErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewIOFailureError creates a new IOFailureError wrapping the underlying error
func NewIOFailureError(operation string, err error) error {
	return &IOFailureError{Operation: operation, Err: err}
}
