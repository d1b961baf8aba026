package server

import (
	"log/slog"

	"quill/internal/middleware"
	"quill/internal/service"
	"quill/internal/session"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /register.
// On success a session is established for the new user. Validation
// failures are logged and absorbed into the same redirect; the page the
// client lands on reflects the resulting session state.
func (s *Server) Register(c *fiber.Ctx) error {
	_, token, err := s.accountService.Register(c.Context(), service.RegisterInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	})
	if err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "registration rejected",
			slog.String("error", err.Error()))
		return redirectHome(c)
	}

	s.setSessionCookie(c, token)
	return redirectHome(c)
}

// Login handles POST /login.
// Success and failure both redirect home; only the session cookie differs.
// The prior token, if any, is rotated away on success.
func (s *Server) Login(c *fiber.Ctx) error {
	token, ok, err := s.accountService.Login(c.Context(), service.LoginInput{
		Name:       c.FormValue("loginname"),
		Password:   c.FormValue("loginpassword"),
		PriorToken: c.Cookies(session.CookieName),
	})
	if err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "login rejected",
			slog.String("error", err.Error()))
		return redirectHome(c)
	}
	if !ok {
		middleware.Logger.InfoContext(c.UserContext(), "login failed")
		return redirectHome(c)
	}

	s.setSessionCookie(c, token)
	return redirectHome(c)
}

// Logout handles POST /logout. Always succeeds.
func (s *Server) Logout(c *fiber.Ctx) error {
	if err := s.accountService.Logout(c.Context(), c.Cookies(session.CookieName)); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "logout error",
			slog.String("error", err.Error()))
	}
	s.clearSessionCookie(c)
	return redirectHome(c)
}
