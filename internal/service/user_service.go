package service

import (
	"context"
	"strings"

	"showcase/internal/models"
	"showcase/internal/repository"
)

// SearchLimit caps username search results.
const SearchLimit = 10

type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{userRepo: userRepo, postRepo: postRepo}
}

// GetOwnProfile returns the requester's profile including email, plus a live
// post count computed at request time.
func (s *UserService) GetOwnProfile(ctx context.Context, userID uint) (*models.ProfileWithCount, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileWithCount{
		User:      user.OwnProfile(),
		PostCount: count,
	}, nil
}

// GetPublicProfile returns a profile keyed by username, without email. The
// post count is by denormalized username, matching the per-user listing.
func (s *UserService) GetPublicProfile(ctx context.Context, username string) (*models.ProfileWithCount, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return &models.ProfileWithCount{
		User:      user.PublicProfile(),
		PostCount: count,
	}, nil
}

// SearchUsernames returns up to SearchLimit users whose username contains
// the query as a case-insensitive substring, in store order.
func (s *UserService) SearchUsernames(ctx context.Context, query string) ([]models.UsernameSummary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("Username query is required")
	}

	users, err := s.userRepo.SearchByUsername(ctx, query, SearchLimit)
	if err != nil {
		return nil, err
	}

	out := make([]models.UsernameSummary, 0, len(users))
	for _, u := range users {
		out = append(out, models.UsernameSummary{
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}
