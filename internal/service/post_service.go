// Package service contains the request-handling business logic.
package service

import (
	"context"
	"log/slog"

	"showcase/internal/media"
	"showcase/internal/middleware"
	"showcase/internal/models"
	"showcase/internal/repository"
)

// FeedLimit is the fixed size of the global feed window.
const FeedLimit = 50

type PostService struct {
	postRepo    repository.PostRepository
	store       media.Store
	mediaFolder string
}

// UploadImageInput carries an upload request. UserID and Username are the
// already-verified requester identity.
type UploadImageInput struct {
	UserID      uint
	Username    string
	Content     []byte
	ContentType string
	Description string
}

type DeletePostInput struct {
	RequesterID uint
	PostID      uint
}

func NewPostService(postRepo repository.PostRepository, store media.Store, mediaFolder string) *PostService {
	return &PostService{
		postRepo:    postRepo,
		store:       store,
		mediaFolder: mediaFolder,
	}
}

// UploadImage forwards the raw bytes to the media store and, only on
// success, persists the post. An upload failure leaves no database record
// and is never retried.
func (s *PostService) UploadImage(ctx context.Context, in UploadImageInput) (*models.Post, error) {
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No image file provided")
	}

	obj, err := s.store.Upload(ctx, in.Content, in.ContentType)
	if err != nil {
		return nil, models.NewUploadError(err)
	}

	post := &models.Post{
		ImageURL:    obj.URL,
		MediaKey:    obj.Key,
		Description: in.Description,
		UserID:      in.UserID,
		Username:    in.Username,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetFeed returns the most recent posts, newest first, capped at FeedLimit.
func (s *PostService) GetFeed(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.ListRecent(ctx, FeedLimit)
}

// GetPostsByUsername returns every post carrying the denormalized username,
// newest first.
func (s *PostService) GetPostsByUsername(ctx context.Context, username string) ([]*models.Post, error) {
	return s.postRepo.GetByUsername(ctx, username)
}

// DeletePost removes a post owned by the requester. The external asset
// delete is best-effort: a failure there is logged and the database record
// is removed regardless, which may leak an orphaned asset.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.UserID != in.RequesterID {
		return models.NewUnauthorizedError("Not authorized to delete this post")
	}

	key := post.MediaKey
	if key == "" {
		key = media.KeyFromURL(post.ImageURL, s.mediaFolder)
	}
	if key != "" {
		if err := s.store.Delete(ctx, key); err != nil {
			middleware.Logger.ErrorContext(ctx, "media store deletion failed",
				slog.Uint64("post_id", uint64(post.ID)),
				slog.String("media_key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
