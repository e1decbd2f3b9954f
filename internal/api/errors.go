package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akramas2005/backend-as-space/internal/service"
)

// mapServiceError converts a service layer error into the matching HTTP
// error response.
func mapServiceError(c echo.Context, err error) error {
	var se *service.ServiceError
	if !errors.As(err, &se) {
		return Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(se, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(se, service.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(se, service.ErrTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(se, service.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}
	return Error(c, status, se.Code, se.Message)
}
