package service

import (
	"context"
	"errors"
	"testing"

	"showcase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn           func(context.Context, *models.User) error
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	searchByUsernameFn func(context.Context, string, int) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) SearchByUsername(ctx context.Context, query string, limit int) ([]models.User, error) {
	return s.searchByUsernameFn(ctx, query, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:           func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:          func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:    func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		searchByUsernameFn: func(_ context.Context, _ string, _ int) ([]models.User, error) { return nil, nil },
	}
}

func TestUserService_GetOwnProfile(t *testing.T) {
	t.Parallel()

	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		assert.Equal(t, uint(5), id)
		return &models.User{ID: 5, Username: "alice", Email: "alice@example.com"}, nil
	}
	posts := noopPostRepo()
	posts.countByUserIDFn = func(_ context.Context, userID uint) (int64, error) {
		assert.Equal(t, uint(5), userID)
		return 3, nil
	}
	svc := NewUserService(users, posts)

	profile, err := svc.GetOwnProfile(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Username)
	assert.Equal(t, "alice@example.com", profile.User.Email)
	assert.Equal(t, int64(3), profile.PostCount)
}

func TestUserService_GetOwnProfile_MissingUser(t *testing.T) {
	t.Parallel()

	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewUserService(users, noopPostRepo())

	_, err := svc.GetOwnProfile(context.Background(), 42)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserService_GetPublicProfile_OmitsEmail(t *testing.T) {
	t.Parallel()

	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		assert.Equal(t, "bob", username)
		return &models.User{ID: 9, Username: "bob", Email: "bob@example.com"}, nil
	}
	posts := noopPostRepo()
	posts.countByUsernameFn = func(_ context.Context, username string) (int64, error) {
		assert.Equal(t, "bob", username)
		return 7, nil
	}
	svc := NewUserService(users, posts)

	profile, err := svc.GetPublicProfile(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", profile.User.Username)
	assert.Empty(t, profile.User.Email, "public profile must not expose email")
	assert.Equal(t, int64(7), profile.PostCount)
}

func TestUserService_SearchUsernames(t *testing.T) {
	t.Parallel()

	t.Run("blank query is a validation error", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopPostRepo())
		for _, q := range []string{"", "   ", "\t"} {
			_, err := svc.SearchUsernames(context.Background(), q)
			assertValidationError(t, err)
		}
	})

	t.Run("passes query and cap to repository", func(t *testing.T) {
		t.Parallel()
		users := noopUserRepo()
		users.searchByUsernameFn = func(_ context.Context, query string, limit int) ([]models.User, error) {
			assert.Equal(t, "ali", query)
			assert.Equal(t, SearchLimit, limit)
			return []models.User{{Username: "alice"}, {Username: "aliya"}}, nil
		}
		svc := NewUserService(users, noopPostRepo())

		results, err := svc.SearchUsernames(context.Background(), "ali")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "alice", results[0].Username)
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), noopPostRepo())
		results, err := svc.SearchUsernames(context.Background(), "zzz")
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.NotNil(t, results, "empty result should marshal as [] not null")
	})
}
