package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/estately/estately/core"
)

// requireAuth verifies the session cookie and stores the subject for
// downstream handlers. On any failure the pipeline halts; no handler runs.
func (s *Server) requireAuth(c fiber.Ctx) error {
	subject, err := s.app.Guard.Authenticate(c.Cookies(cookieName))
	if err != nil {
		return unauthorized(c)
	}

	c.Locals("subject", subject)
	return c.Next()
}

// requireRole re-resolves the subject's role against the store on every
// request, so an admin revoking agent status bites on the next call without
// forcing re-authentication.
func (s *Server) requireRole(role core.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		subject := subjectFrom(c)
		if subject == "" {
			return unauthorized(c)
		}

		if err := s.app.Guard.Require(c.Context(), subject, role); err != nil {
			if errors.Is(err, core.ErrForbiddenRole) {
				return unauthorized(c)
			}
			return handleError(c, err)
		}
		return c.Next()
	}
}

func subjectFrom(c fiber.Ctx) string {
	subject, _ := c.Locals("subject").(string)
	return subject
}
