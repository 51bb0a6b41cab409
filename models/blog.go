package models

import "time"

// Span is a leaf of rich text. Only spans carry searchable text.
type Span struct {
	Type string `bson:"_type" json:"_type"`
	Text string `bson:"text" json:"text"`
}

// Block is one typed rich-text block. Non-"block" types (image, embed)
// carry no children and are dropped when flattening to plain text.
type Block struct {
	Type     string `bson:"_type" json:"_type"`
	Children []Span `bson:"children,omitempty" json:"children,omitempty"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	Alt      string `bson:"alt,omitempty" json:"alt,omitempty"`
}

type Blog struct {
	ID          string `bson:"_id" json:"_id"`
	Type        string `bson:"_type" json:"_type"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Slug        string `bson:"slug" json:"slug"`
	PublishedAt string `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	OrderRank   string `bson:"orderRank,omitempty" json:"orderRank,omitempty"`

	// Author references. Validation caps this at exactly one element; the
	// array shape is kept on purpose.
	Authors    []string `bson:"authors" json:"authors"`
	CategoryID string   `bson:"categoryId" json:"categoryId"`

	RichText []Block  `bson:"richText,omitempty" json:"richText,omitempty"`
	Pokemon  *Pokemon `bson:"pokemon,omitempty" json:"pokemon,omitempty"`
	ImageURL string   `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`

	SEOHideFromLists bool `bson:"seoHideFromLists" json:"seoHideFromLists"`
	SEONoIndex       bool `bson:"seoNoIndex" json:"seoNoIndex"`

	CreatedBy string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
