package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// writeError sends the uniform error body.
func writeError(c echo.Context, code int, message string) error {
	return c.JSON(code, ErrorSchema{Code: code, Message: message})
}

// mapDomainError translates core errors into HTTP responses. The mapping
// keys on sentinel identity, never on message text.
func mapDomainError(c echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.Is(err, order.ErrUnauthorizedRole):
		return writeError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, order.ErrIllegalTransition):
		return writeError(c, http.StatusConflict, err.Error())

	case errors.As(err, &notFound):
		return writeError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrMalformedDocument),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ports.ErrStoreWrite):
		return writeError(c, http.StatusBadGateway, "store write failed")

	default:
		return writeError(c, http.StatusInternalServerError, "internal error")
	}
}
