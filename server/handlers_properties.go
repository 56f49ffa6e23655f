package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/estately/estately/core"
)

func (s *Server) listProperties(c fiber.Ctx) error {
	properties, err := s.app.Listings.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(properties)
}

func (s *Server) getProperty(c fiber.Ctx) error {
	property, err := s.app.Listings.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(property)
}

func (s *Server) addProperty(c fiber.Ctx) error {
	var input core.AddInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	property, err := s.app.Listings.Add(c.Context(), subjectFrom(c), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

func (s *Server) updateProperty(c fiber.Ctx) error {
	var input core.UpdateInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	property, err := s.app.Listings.Update(c.Context(), subjectFrom(c), c.Params("id"), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(property)
}

func (s *Server) deleteProperty(c fiber.Ctx) error {
	if err := s.app.Listings.Delete(c.Context(), subjectFrom(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// listAgentProperties is scoped to the caller: the path email must be the
// authenticated agent's own.
func (s *Server) listAgentProperties(c fiber.Ctx) error {
	if c.Params("email") != subjectFrom(c) {
		return unauthorized(c)
	}

	properties, err := s.app.Listings.ListByAgent(c.Context(), subjectFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(properties)
}

type flagsInput struct {
	Verified   bool `json:"verified"`
	Advertised bool `json:"advertised"`
}

func (s *Server) setPropertyFlags(c fiber.Ctx) error {
	var input flagsInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := s.app.Listings.SetFlags(c.Context(), c.Params("id"), input.Verified, input.Advertised); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
