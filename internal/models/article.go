package models

import (
	"time"
)

// Article represents an article mirrored from the upstream WordPress site.
// Articles are created by the sync pipeline only, never through the API,
// and external_id is the dedup key against the upstream.
type Article struct {
	ID          int64      `json:"-" db:"id"`
	ExternalID  int64      `json:"external_id" db:"external_id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Slug        string     `json:"slug" db:"slug"`
	Excerpt     string     `json:"excerpt" db:"excerpt"`
	Author      string     `json:"author" db:"author"`
	Status      string     `json:"status" db:"status"`
	Link        string     `json:"link" db:"link"`
	ImageURL    string     `json:"image_url" db:"image_url"`
	PublishedAt time.Time  `json:"published_at" db:"published_at"`
	Categories  []Category `json:"categories" db:"-"`
}

// Category is a taxonomy term resolved from the upstream site.
// Names are unique; the relation to articles is many-to-many.
type Category struct {
	ID   int64  `json:"-" db:"id"`
	Name string `json:"name" db:"name"`
}
