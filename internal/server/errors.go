package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-engine/internal/fetch"
	"github.com/jonathan/resume-engine/internal/latex"
	"github.com/jonathan/resume-engine/internal/validation"
	"github.com/jonathan/resume-engine/internal/versions"
)

// HTTPStatus maps the engine's typed errors to HTTP status codes.
func HTTPStatus(err error) int {
	var (
		notFound    *versions.NotFoundError
		conflict    *versions.ConflictError
		lastVersion *versions.LastVersionError
		incomplete  *validation.IncompleteError
		unavailable *latex.UnavailableError
		compilation *latex.CompilationError
		fetchErr    *fetch.Error
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict), errors.As(err, &lastVersion):
		return http.StatusConflict
	case errors.As(err, &incomplete):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &compilation):
		if compilation.Timeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusInternalServerError
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// serviceError writes a typed engine error as JSON. Validation gate failures
// carry the missing-section list so clients can prompt for the gaps.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	var incomplete *validation.IncompleteError
	if errors.As(err, &incomplete) {
		s.jsonResponse(w, status, map[string]any{
			"error":            err.Error(),
			"missing_sections": incomplete.Missing,
		})
		return
	}

	var compilation *latex.CompilationError
	if errors.As(err, &compilation) && compilation.LogOutput != "" {
		s.jsonResponse(w, status, map[string]any{
			"error": err.Error(),
			"log":   compilation.LogOutput,
		})
		return
	}

	s.errorResponse(w, status, err.Error())
}
