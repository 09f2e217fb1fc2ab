package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PostStatus represents a WordPress post_status value
type PostStatus string

// Post statuses
const (
	PostStatusPublish PostStatus = "publish"
	PostStatusDraft   PostStatus = "draft"
	PostStatusPending PostStatus = "pending"
	PostStatusPrivate PostStatus = "private"
)

// DefaultPostType is the post_type of regular posts
const DefaultPostType = "post"

// Post is a row of the posts table inserted as a test fixture
type Post struct {
	ID      int64
	Title   string
	Content string
	Name    string
	Status  PostStatus
	Type    string
	Author  int64
	Date    time.Time
}

// Domain errors
var (
	ErrEmptyTitle    = errors.New("post title cannot be empty")
	ErrInvalidStatus = errors.New("invalid post status")
)

// NewPost creates a new post fixture with validation
func NewPost(title string, status PostStatus) (*Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return &Post{
		Title:  title,
		Name:   Slug(title),
		Status: status,
		Type:   DefaultPostType,
		Author: 1,
		Date:   time.Now().UTC(),
	}, nil
}

// Valid reports whether s is a status WordPress recognizes for posts
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusPublish, PostStatusDraft, PostStatusPending, PostStatusPrivate:
		return true
	}
	return false
}

// Slug derives a post_name from a title: lower case, runs of anything other
// than letters and digits collapsed to a single hyphen
func Slug(title string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			hyphen = false
			continue
		}
		if !hyphen && b.Len() > 0 {
			b.WriteByte('-')
			hyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
