package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrRunNotFound indicates a pipeline run was not found
type ErrRunNotFound struct {
	RunID uuid.UUID
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.RunID)
}

// ErrArtifactNotFound indicates a run exists but the requested step artifact does not
type ErrArtifactNotFound struct {
	RunID uuid.UUID
	Step  string
}

func (e *ErrArtifactNotFound) Error() string {
	return fmt.Sprintf("artifact %q not found for run %s", e.Step, e.RunID)
}

// ErrUnsupportedDocument indicates the uploaded file format cannot be read
type ErrUnsupportedDocument struct {
	Filename string
}

func (e *ErrUnsupportedDocument) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Filename)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrDatabaseUnavailable indicates the server is running without persistence
type ErrDatabaseUnavailable struct{}

func (e *ErrDatabaseUnavailable) Error() string {
	return "persistence is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrRunNotFound, *ErrArtifactNotFound:
		return http.StatusNotFound
	case *ErrUnsupportedDocument:
		return http.StatusUnsupportedMediaType
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrDatabaseUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
