package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/estately/estately/core"
)

type loginInput struct {
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
}

// issueToken is the authentication entry point: it exchanges an identity
// payload for a session cookie. Accounts with a password credential must
// present it; social-login accounts pass on subject alone.
func (s *Server) issueToken(c fiber.Ctx) error {
	var input loginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := s.app.Users.Authenticate(c.Context(), input.Email, input.Password)
	if err != nil {
		return handleError(c, err)
	}

	token, err := s.app.Tokens.Issue(user.Email)
	if err != nil {
		return handleError(c, err)
	}

	c.Cookie(s.sessionCookie(token))
	return c.JSON(fiber.Map{"success": true})
}

// logout overwrites the cookie with a zeroed lifetime. The token itself
// stays valid until its embedded expiry; there is no revocation list.
func (s *Server) logout(c fiber.Ctx) error {
	c.Cookie(s.expiredCookie())
	return c.JSON(fiber.Map{"success": true})
}

// upsertUser is the idempotent first-login bootstrap. No gate: it runs
// before any token exists.
func (s *Server) upsertUser(c fiber.Ctx) error {
	var input core.UpsertInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	input.Email = c.Params("email")

	user, err := s.app.Users.Upsert(c.Context(), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}

// getUserRole exposes the stored role for the login bootstrap. No gate.
func (s *Server) getUserRole(c fiber.Ctx) error {
	role, err := s.app.Users.GetRole(c.Context(), c.Params("email"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"role": role})
}
