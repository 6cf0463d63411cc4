// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// MaxDescriptionLen is the hard limit on a post description, enforced at the
// persistence boundary.
const MaxDescriptionLen = 500

// Post represents a single uploaded image plus metadata and owner reference.
// Username is denormalized from the owning User at creation time; the system
// has no rename operation, so it cannot go stale.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ImageURL string `gorm:"not null" json:"imageUrl"`
	// MediaKey is the external asset identifier under the media store's
	// folder namespace. Rows written before the column existed have it
	// empty; their key is derived from ImageURL on delete.
	MediaKey    string    `gorm:"index" json:"-"`
	Description string    `gorm:"size:500" json:"description"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Username    string    `gorm:"not null;index" json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostSummary is the response shape for a post, matching the upload and
// listing payloads.
type PostSummary struct {
	ID          uint      `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary converts a post to its response shape.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		ID:          p.ID,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Username:    p.Username,
		CreatedAt:   p.CreatedAt,
	}
}

// Summaries converts a slice of posts preserving order.
func Summaries(posts []*Post) []PostSummary {
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Summary())
	}
	return out
}
