package indexer

import (
	"reflect"
	"testing"

	"pokeblog/cms"
	"pokeblog/models"
)

func snapshot(id, title string) cms.BlogSnapshot {
	return cms.BlogSnapshot{
		Blog: models.Blog{
			ID:          id,
			Type:        "blog",
			Title:       title,
			Description: "A post about " + title,
			Slug:        "slug-" + id,
			PublishedAt: "2024-03-01",
			OrderRank:   "0|a",
			RichText: []models.Block{
				{Type: "block", Children: []models.Span{
					{Type: "span", Text: "Hello"},
					{Type: "span", Text: "world"},
				}},
			},
		},
		AuthorDocs:   []models.Author{{ID: "a1", Name: "Ash", Position: "Trainer"}},
		CategoryDocs: []models.Category{{ID: "c1", Title: "Guides", Slug: "guides", Color: "blue"}},
	}
}

func TestTransformBasics(t *testing.T) {
	hits, skipped := Transform([]cms.BlogSnapshot{snapshot("b1", "Pikachu 101")})
	if skipped != 0 {
		t.Fatalf("expected no skips, got %d", skipped)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}

	h := hits[0]
	if h.ObjectID != "b1" || h.ID != "b1" {
		t.Fatalf("objectID must equal document id, got %q / %q", h.ObjectID, h.ID)
	}
	if h.Content != "Hello world" {
		t.Fatalf("expected flattened content, got %q", h.Content)
	}
	if h.Author.Name != "Ash" || h.Author.Position != "Trainer" {
		t.Fatalf("author not denormalized: %+v", h.Author)
	}
	if h.Category.Slug != "guides" {
		t.Fatalf("category not denormalized: %+v", h.Category)
	}
	if h.SearchBlob == "" {
		t.Fatal("expected non-empty search blob")
	}
}

func TestTransformSkipsUntitled(t *testing.T) {
	snaps := []cms.BlogSnapshot{
		snapshot("b1", "Kept"),
		snapshot("b2", "   "),
	}
	hits, skipped := Transform(snaps)
	if skipped != 1 {
		t.Fatalf("expected 1 skip, got %d", skipped)
	}
	if len(hits) != 1 || hits[0].ID != "b1" {
		t.Fatalf("expected only b1 to survive, got %+v", hits)
	}
}

func TestTransformMissingRefs(t *testing.T) {
	s := snapshot("b1", "Orphan")
	s.AuthorDocs = nil
	s.CategoryDocs = nil

	hits, _ := Transform([]cms.BlogSnapshot{s})
	h := hits[0]
	if h.Author.Name != "" || h.Category.Title != "" {
		t.Fatalf("expected empty denormalized fields, got %+v / %+v", h.Author, h.Category)
	}
}

func TestTransformIdempotent(t *testing.T) {
	snaps := []cms.BlogSnapshot{snapshot("b1", "Stable")}
	first, _ := Transform(snaps)
	second, _ := Transform(snaps)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("transform must be deterministic for identical input")
	}
}
