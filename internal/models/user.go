// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The password hash never leaves the
// repository layer: it is excluded from JSON and stripped from profile
// responses entirely.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Profile is the exposed view of a user. Email is populated only for the
// owner's own profile.
type Profile struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileWithCount pairs a profile with a live post count.
type ProfileWithCount struct {
	User      Profile `json:"user"`
	PostCount int64   `json:"postCount"`
}

// UsernameSummary is a search result entry.
type UsernameSummary struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnProfile builds the owner-facing view including email.
func (u *User) OwnProfile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// PublicProfile builds the public view without email.
func (u *User) PublicProfile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
