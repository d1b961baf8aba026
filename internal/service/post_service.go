package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/sanitize"
)

// PostService implements the ownership-checked post operations.
type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID uint
	Title  string
	Body   string
}

type UpdatePostInput struct {
	UserID uint
	PostID uint
	Title  string
	Body   string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// List returns all posts owned by currentUserID in storage order, each with
// its owner preloaded. An anonymous caller (id 0) gets an empty slice.
func (s *PostService) List(ctx context.Context, currentUserID uint) ([]*models.Post, error) {
	if currentUserID == 0 {
		return []*models.Post{}, nil
	}
	return s.postRepo.GetByUserID(ctx, currentUserID)
}

// Create persists a new post owned by the authenticated user. The
// authentication precondition is enforced here, not left to routing.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.UserID == 0 {
		return nil, models.NewAuthRequiredError("creating a post requires an authenticated user")
	}

	title := sanitize.StripTags(in.Title)
	body := sanitize.StripTags(in.Body)
	if title == "" {
		return nil, models.NewValidationError("title is required")
	}
	if body == "" {
		return nil, models.NewValidationError("body is required")
	}

	post := &models.Post{
		Title:  title,
		Body:   body,
		UserID: in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetForEdit loads the post for the edit screen. Non-owners get an
// ownership mismatch, the same rule as Update.
func (s *PostService) GetForEdit(ctx context.Context, currentUserID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != currentUserID {
		return nil, models.NewOwnershipMismatchError("Post", postID)
	}
	return post, nil
}

// Update rewrites the post's title and body. Ownership is checked before
// validation, matching the original flow; a mismatch leaves the post
// untouched.
func (s *PostService) Update(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewOwnershipMismatchError("Post", in.PostID)
	}

	title := sanitize.StripTags(in.Title)
	body := sanitize.StripTags(in.Body)
	if title == "" {
		return nil, models.NewValidationError("title is required")
	}
	if body == "" {
		return nil, models.NewValidationError("body is required")
	}

	post.Title = title
	post.Body = body
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete permanently removes the post when the caller owns it. The
// ownership comparison is strict equality on the canonical uint ID.
func (s *PostService) Delete(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.UserID != in.UserID {
		return models.NewOwnershipMismatchError("Post", in.PostID)
	}
	return s.postRepo.Delete(ctx, in.PostID)
}
