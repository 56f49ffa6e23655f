package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// cookieName is the session cookie. HTTP-only always; the token payload
// carries its own 7-day expiry, so the live cookie sets no max-age.
const cookieName = "token"

func (s *Server) sessionCookie(token string) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	}
	if s.opts.SecureCookies {
		cookie.Secure = true
		cookie.SameSite = fiber.CookieSameSiteNoneMode
	} else {
		cookie.SameSite = fiber.CookieSameSiteStrictMode
	}
	return cookie
}

// expiredCookie is the logout overwrite: same attributes, zeroed lifetime.
func (s *Server) expiredCookie() *fiber.Cookie {
	cookie := s.sessionCookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	return cookie
}
