// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"path"
	"time"

	"showcase/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	MaxDays     int
	ShouldClean bool
	MediaFolder string
}

// Seeder populates the database with demo users and posts.
type Seeder struct {
	db   *gorm.DB
	opts Options
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MediaFolder == "" {
		opts.MediaFolder = "creative-showcase"
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	return &Seeder{db: db, opts: opts}
}

// ClearAll removes all posts and users. Posts go first to satisfy the
// foreign key.
func (s *Seeder) ClearAll() error {
	if err := s.db.Exec("DELETE FROM posts").Error; err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	if err := s.db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return nil
}

// Seed creates users and posts according to the configured options.
func (s *Seeder) Seed() error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...",
		s.opts.NumUsers, s.opts.NumPosts)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := s.createUsers(s.opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	posts, err := s.createPosts(users, s.opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	return nil
}

// BuildUser constructs a sample user without persisting it. Optional
// override functions may modify the generated user.
func (s *Seeder) BuildUser(overrides ...func(*models.User)) *models.User {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user.Password = string(hashedPassword)

	for _, override := range overrides {
		override(user)
	}
	return user
}

// BuildPost constructs a sample post for the given user without persisting
// it. The image URL and media key follow the upload layout so seeded posts
// behave like real ones.
func (s *Seeder) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	key := path.Join(s.opts.MediaFolder, gofakeit.UUID()+".jpg")
	post := &models.Post{
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		MediaKey:    key,
		Description: gofakeit.Sentence(8),
		UserID:      user.ID,
		Username:    user.Username,
	}

	// realistic created_at spread
	daysBack := rand.Intn(s.opts.MaxDays)
	hoursBack := rand.Intn(24)
	minsBack := rand.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

func (s *Seeder) createUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user := s.BuildUser()
		if err := s.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		owner := users[rand.Intn(len(users))]
		posts = append(posts, s.BuildPost(owner))
	}

	if err := s.db.Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
