package server

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/estately/estately/core"
)

// unauthorizedMessage is the one fixed body for every 401. Authentication
// and authorization failures are indistinguishable to the caller.
const unauthorizedMessage = "unauthorized access"

func unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": unauthorizedMessage,
	})
}

// handleError maps domain errors to HTTP responses. Unexpected store or
// upstream failures carry the raw detail; that body is a diagnostic, not a
// contract.
func handleError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	if status == fiber.StatusUnauthorized {
		return unauthorized(c)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, core.ErrMissingToken),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrTokenExpired),
		errors.Is(err, core.ErrForbiddenRole),
		errors.Is(err, core.ErrNotOwner),
		errors.Is(err, core.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrUnknownRole),
		errors.Is(err, core.ErrUnknownStatus),
		errors.Is(err, core.ErrInvalidAmount):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrPropertyNotFound),
		errors.Is(err, core.ErrOfferNotFound),
		errors.Is(err, core.ErrBookingNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrOfferNotPending),
		errors.Is(err, core.ErrOfferNotSaved),
		errors.Is(err, core.ErrOfferLocked),
		errors.Is(err, core.ErrOfferNotAccepted):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
