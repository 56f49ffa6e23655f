package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/estately/estately/core"
)

func (s *Server) listUsers(c fiber.Ctx) error {
	users, err := s.app.Users.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(users)
}

type roleChangeInput struct {
	Role string `json:"role"`
}

// changeUserRole applies an admin role change. The same write cascades the
// field value onto the target's listings; when that second write fails the
// role change has already landed, and the response says so instead of
// pretending the operation was atomic.
func (s *Server) changeUserRole(c fiber.Ctx) error {
	var input roleChangeInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	role, err := core.ParseRole(input.Role)
	if err != nil {
		return handleError(c, err)
	}

	cascadePending, err := s.app.Users.ChangeRole(c.Context(), c.Params("email"), role)
	if err != nil {
		if cascadePending {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":          err.Error(),
				"cascadePending": true,
			})
		}
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) deleteUser(c fiber.Ctx) error {
	if err := s.app.Users.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
