package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Reasons []string `json:"reasons,omitempty"`
}

// problem maps an application error to an HTTP response. Validation
// failures carry the full reason list so reviewers see everything wrong
// with the order at once.
func problem(ctx echo.Context, err error) error {
	var validationErr *services.ValidationFailedError
	if errors.As(err, &validationErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "order is not ready for export",
			Reasons: validationErr.Reasons,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrSequenceAlreadyAssigned):
		return respond(ctx, http.StatusConflict, err)
	case errors.Is(err, services.ErrMalformedLine):
		return respond(ctx, http.StatusUnprocessableEntity, err)
	case errors.Is(err, commands.ErrReasonTooShort),
		errors.Is(err, commands.ErrConfirmationRequired),
		errors.Is(err, commands.ErrActorIsRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		return respond(ctx, http.StatusInternalServerError, err)
	}
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
