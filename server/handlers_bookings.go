package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/estately/estately/core"
)

func (s *Server) createBooking(c fiber.Ctx) error {
	var input core.BookInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	booking, err := s.app.Bookings.Book(c.Context(), subjectFrom(c), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (s *Server) listUserBookings(c fiber.Ctx) error {
	bookings, err := s.app.Bookings.ListByUser(c.Context(), subjectFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(bookings)
}

func (s *Server) listAgentBookings(c fiber.Ctx) error {
	bookings, err := s.app.Bookings.ListByAgent(c.Context(), subjectFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(bookings)
}

type bookingStatusInput struct {
	Status string `json:"status"`
}

func (s *Server) updateBookingStatus(c fiber.Ctx) error {
	var input bookingStatusInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := s.app.Bookings.SetStatus(c.Context(), subjectFrom(c), c.Params("id"), input.Status); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// agentSalesTotal sums offer prices across the agent's bookings. The path
// email must be the caller's own.
func (s *Server) agentSalesTotal(c fiber.Ctx) error {
	if c.Params("email") != subjectFrom(c) {
		return unauthorized(c)
	}

	total, err := s.app.Bookings.SalesTotal(c.Context(), subjectFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"total": total})
}
