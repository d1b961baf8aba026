package server

import (
	"log/slog"

	"quill/internal/middleware"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Home handles GET /. Anonymous visitors see the register and login
// forms; authenticated users see their own posts and the create form.
func (s *Server) Home(c *fiber.Ctx) error {
	userID, authenticated := s.currentUserID(c)

	posts, err := s.postService.List(c.Context(), userID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "listing posts failed",
			slog.String("error", err.Error()))
		posts = nil
	}

	var userName string
	if authenticated {
		if user, err := s.userRepo.GetByID(c.Context(), userID); err == nil {
			userName = user.Name
		}
	}

	return c.Render("home", fiber.Map{
		"IsAuthenticated": authenticated,
		"UserName":        userName,
		"Posts":           posts,
	})
}

// CreatePost handles POST /createpost. The service enforces the
// authentication precondition; every outcome resolves to the redirect.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, _ := s.currentUserID(c)

	if _, err := s.postService.Create(c.Context(), service.CreatePostInput{
		UserID: userID,
		Title:  c.FormValue("title"),
		Body:   c.FormValue("body"),
	}); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "create post rejected",
			slog.String("error", err.Error()))
	}
	return redirectHome(c)
}

// ShowEditScreen handles GET /edit-post/:id. Non-owners are redirected
// home instead of seeing the form.
func (s *Server) ShowEditScreen(c *fiber.Ctx) error {
	userID, _ := s.currentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return redirectHome(c)
	}

	post, err := s.postService.GetForEdit(c.Context(), userID, postID)
	if err != nil {
		middleware.Logger.InfoContext(c.UserContext(), "edit screen denied",
			slog.Uint64("post_id", uint64(postID)), slog.String("error", err.Error()))
		return redirectHome(c)
	}

	return c.Render("edit-post", fiber.Map{"Post": post})
}

// UpdatePost handles PUT /edit-post/:id. An ownership mismatch performs
// no mutation and is indistinguishable from success to the client.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID, _ := s.currentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return redirectHome(c)
	}

	if _, err := s.postService.Update(c.Context(), service.UpdatePostInput{
		UserID: userID,
		PostID: postID,
		Title:  c.FormValue("title"),
		Body:   c.FormValue("body"),
	}); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "update post rejected",
			slog.Uint64("post_id", uint64(postID)), slog.String("error", err.Error()))
	}
	return redirectHome(c)
}

// DeletePost handles DELETE /delete-post/:id. Deletion is permanent and
// owner-only; all outcomes resolve to the redirect.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, _ := s.currentUserID(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return redirectHome(c)
	}

	if err := s.postService.Delete(c.Context(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "delete post rejected",
			slog.Uint64("post_id", uint64(postID)), slog.String("error", err.Error()))
	}
	return redirectHome(c)
}
