package models

import (
	"time"
)

// Bookmark ties a user to an article. The user id is the JWT subject
// issued by the external auth service and is stored opaque. At most one
// bookmark exists per (user, article) pair, enforced by a unique
// constraint in the store.
type Bookmark struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"-" db:"user_id"`
	ArticleID int64     `json:"-" db:"article_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Article   *Article  `json:"article,omitempty" db:"-"`
}

// BookmarkInput is the payload accepted when creating a bookmark.
// ArticleID is the article's external id, consistent with the rest of
// the API surface.
type BookmarkInput struct {
	ArticleID int64 `json:"article_id"`
}
