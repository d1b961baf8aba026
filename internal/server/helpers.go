package server

import (
	"errors"
	"time"

	"quill/internal/session"

	"github.com/gofiber/fiber/v2"
)

// errInvalidID is a sentinel for unparseable route IDs; callers redirect home.
var errInvalidID = errors.New("invalid id")

// currentUserID resolves the session cookie to a user ID.
// Returns (0, false) for anonymous requests.
func (s *Server) currentUserID(c *fiber.Ctx) (uint, bool) {
	token := c.Cookies(session.CookieName)
	if token == "" {
		return 0, false
	}
	userID, ok, err := s.sessions.Resolve(c.Context(), token)
	if err != nil || !ok {
		return 0, false
	}
	return userID, true
}

// setSessionCookie attaches the session token to the response.
func (s *Server) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(s.config.SessionTTLHours) * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// redirectHome is the uniform response for every mutating route.
func redirectHome(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusFound)
}

// parseID extracts a route parameter as a positive uint.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
