package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "leader"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrLeaderNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrLeaderAssigned))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &ConflictError{Entity: "leader", Context: "is already assigned to another team"}
		assert.Equal(t, "leader is already assigned to another team", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &ConflictError{Entity: "leader"}
		assert.Equal(t, "leader conflict", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &ConflictError{Entity: "project", Context: "x"}
		err2 := &ConflictError{Entity: "project", Context: "x"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrLeaderAssigned))
		assert.True(t, IsConflict(ErrProjectAssigned))
		assert.False(t, IsConflict(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "team", Message: "missing key"}
		assert.Equal(t, "validation error: team - missing key", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "malformed record"}
		assert.Equal(t, "validation error: malformed record", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("type", "unrecognized project type")))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestIOFailureError(t *testing.T) {
	t.Run("wraps the underlying error", func(t *testing.T) {
		err := NewIOFailureError("export", io.ErrClosedPipe)
		assert.True(t, IsIOFailure(err))
		assert.True(t, errors.Is(err, io.ErrClosedPipe))
		assert.Contains(t, err.Error(), "export")
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.False(t, IsAuthentication(ErrAdminRequired))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrAdminRequired))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})
}
