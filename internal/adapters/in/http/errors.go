package http

import (
	"errors"
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps the application error taxonomy onto HTTP status codes:
// validation failures are 400, missing objects 404, authorization failures
// 403, uniqueness and self-deletion violations 409, everything else 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, commands.ErrCannotDeleteSelf):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, commands.ErrCourierRoleRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
