package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/estately/estately/core"
)

// createPaymentIntent validates the amount and exchanges it with the
// payment authority for a client-usable handle. A bad amount is an explicit
// 400, not a silent empty response; an authority failure is a 500.
func (s *Server) createPaymentIntent(c fiber.Ctx) error {
	var input core.IntentInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	clientSecret, err := s.app.Payments.CreateIntent(c.Context(), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}
