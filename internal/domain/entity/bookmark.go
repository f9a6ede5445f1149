package entity

import (
	"errors"
	"strings"
	"time"
)

// Bookmark is a named, persisted navigation token.
type Bookmark struct {
	Name          string    `json:"name" yaml:"name"`
	Token         string    `json:"token" yaml:"token"`
	PerspectiveID string    `json:"perspective_id,omitempty" yaml:"perspective_id,omitempty"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"updated_at"`
}

// NewBookmark creates a bookmark for a token.
func NewBookmark(name, token string) *Bookmark {
	now := time.Now().UTC()
	return &Bookmark{
		Name:      strings.TrimSpace(name),
		Token:     token,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks that the bookmark can be stored.
func (b *Bookmark) Validate() error {
	if b == nil {
		return ErrInvalidBookmark
	}
	if strings.TrimSpace(b.Name) == "" {
		return ErrInvalidBookmark
	}
	if strings.TrimSpace(b.Token) == "" {
		return ErrInvalidBookmark
	}
	return nil
}

var ErrInvalidBookmark = errors.New("invalid bookmark")
