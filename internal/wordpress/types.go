package wordpress

import "encoding/json"

// Rendered is the WordPress wrapper around rich-text fields.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Link is one entry of a post's _links collection.
type Link struct {
	Href     string `json:"href"`
	Taxonomy string `json:"taxonomy,omitempty"`
	Embed    bool   `json:"embeddable,omitempty"`
}

// Links holds the nested resource links embedded in each post record.
type Links struct {
	FeaturedMedia []Link `json:"wp:featuredmedia"`
	Terms         []Link `json:"wp:term"`
}

// Post is one record of the upstream posts listing.
type Post struct {
	ID      int64       `json:"id"`
	Slug    string      `json:"slug"`
	Link    string      `json:"link"`
	Status  string      `json:"status"`
	DateGMT string      `json:"date_gmt"`
	Title   Rendered    `json:"title"`
	Content Rendered    `json:"content"`
	Excerpt Rendered    `json:"excerpt"`
	Author  json.Number `json:"author"`
	Links   Links       `json:"_links"`
}

// Media is the subset of a featured-media record the mirror cares about.
type Media struct {
	SourceURL string `json:"source_url"`
}

// Term is one taxonomy term returned by a wp:term link.
type Term struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
