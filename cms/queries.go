package cms

import (
	"context"
	"fmt"
	"strings"

	"pokeblog/db"
	"pokeblog/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BlogSnapshot is one eligible blog document with its author and category
// references resolved. This is the raw input to the transform stage.
type BlogSnapshot struct {
	models.Blog  `bson:",inline"`
	AuthorDocs   []models.Author   `bson:"authorDocs"`
	CategoryDocs []models.Category `bson:"categoryDocs"`
}

// Author returns the first resolved author, if any. Validation caps the
// reference array at one element.
func (s *BlogSnapshot) Author() *models.Author {
	if len(s.AuthorDocs) == 0 {
		return nil
	}
	return &s.AuthorDocs[0]
}

func (s *BlogSnapshot) Category() *models.Category {
	if len(s.CategoryDocs) == 0 {
		return nil
	}
	return &s.CategoryDocs[0]
}

// BlogsForIndexing returns the current set of blogs eligible for the
// search index (seoHideFromLists != true), each joined with its author
// and category documents. Read-only; missing references resolve to empty
// slices rather than failing the batch.
func BlogsForIndexing(ctx context.Context) ([]BlogSnapshot, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"seoHideFromLists": bson.M{"$ne": true}}},
		{"$lookup": bson.M{
			"from":         "authors",
			"localField":   "authors",
			"foreignField": "_id",
			"as":           "authorDocs",
		}},
		{"$lookup": bson.M{
			"from":         "categories",
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "categoryDocs",
		}},
		{"$sort": bson.M{"publishedAt": -1, "orderRank": 1}},
	}

	cur, err := db.BlogsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("blogs for indexing: %w", err)
	}
	defer cur.Close(ctx)

	var snapshots []BlogSnapshot
	if err := cur.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("decode indexing snapshot: %w", err)
	}
	return snapshots, nil
}

// BlogSnapshotByID resolves a single blog with its references, without
// the visibility filter: the caller decides whether a hidden document
// means "delete from index".
func BlogSnapshotByID(ctx context.Context, id string) (*BlogSnapshot, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
		{"$lookup": bson.M{
			"from":         "authors",
			"localField":   "authors",
			"foreignField": "_id",
			"as":           "authorDocs",
		}},
		{"$lookup": bson.M{
			"from":         "categories",
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "categoryDocs",
		}},
	}

	cur, err := db.BlogsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("blog snapshot %s: %w", id, err)
	}
	defer cur.Close(ctx)

	var snapshots []BlogSnapshot
	if err := cur.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return &snapshots[0], nil
}

// FlattenRichText joins the text spans of every paragraph block into a
// single space-separated string, preserving block order. Non-text blocks
// are dropped entirely; empty rich text yields "".
func FlattenRichText(blocks []models.Block) string {
	var parts []string
	for _, b := range blocks {
		if b.Type != "block" {
			continue
		}
		var spans []string
		for _, c := range b.Children {
			if c.Type != "span" || c.Text == "" {
				continue
			}
			spans = append(spans, c.Text)
		}
		if len(spans) > 0 {
			parts = append(parts, strings.Join(spans, " "))
		}
	}
	return strings.Join(parts, " ")
}
