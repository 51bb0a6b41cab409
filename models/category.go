package models

import "time"

type Category struct {
	ID          string    `bson:"_id" json:"_id"`
	Type        string    `bson:"_type" json:"_type"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Color       string    `bson:"color" json:"color"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	SortOrder   int       `bson:"sortOrder" json:"sortOrder"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CategoryColors is the closed set of badge colors a category may use.
var CategoryColors = []string{"blue", "green", "purple", "red", "orange", "yellow", "pink", "gray"}

// CategoryStats is the per-category view used by the analyze report and
// the category listing endpoint.
type CategoryStats struct {
	Category  `bson:",inline"`
	PostCount int           `bson:"postCount" json:"postCount"`
	Posts     []CategoryPost `bson:"posts,omitempty" json:"posts,omitempty"`
}

type CategoryPost struct {
	ID          string `bson:"_id" json:"_id"`
	Title       string `bson:"title" json:"title"`
	Slug        string `bson:"slug" json:"slug"`
	PublishedAt string `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
}
