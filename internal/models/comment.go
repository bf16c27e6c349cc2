package models

import (
	"time"
)

// Comment represents a reader comment on an article.
// Comments are cascade-deleted with their article and listed in
// created-ascending order. Inactive comments are hidden from listings
// but kept for moderation.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	ArticleID int64     `json:"-" db:"article_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Body      string    `json:"body" db:"body"`
	Active    bool      `json:"active" db:"active"`
	Created   time.Time `json:"created" db:"created"`
	Updated   time.Time `json:"updated" db:"updated"`
}

// CommentInput is the payload accepted when creating a comment.
type CommentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Body  string `json:"body"`
}
