package cms

import (
	"testing"

	"pokeblog/models"
)

func TestFlattenRichText(t *testing.T) {
	blocks := []models.Block{
		{Type: "block", Children: []models.Span{
			{Type: "span", Text: "Hello"},
			{Type: "span", Text: "world"},
		}},
		{Type: "image", URL: "/static/blogpic/x.jpg", Alt: "ignored"},
		{Type: "block", Children: []models.Span{
			{Type: "span", Text: "Second paragraph."},
			{Type: "span", Text: ""},
		}},
	}

	got := FlattenRichText(blocks)
	want := "Hello world Second paragraph."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFlattenRichTextEmpty(t *testing.T) {
	if got := FlattenRichText(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := FlattenRichText([]models.Block{{Type: "image"}}); got != "" {
		t.Fatalf("expected empty string for non-text blocks, got %q", got)
	}
}

func TestSnapshotAuthorAndCategory(t *testing.T) {
	s := BlogSnapshot{
		AuthorDocs:   []models.Author{{ID: "a1", Name: "Ash", Position: "Trainer"}},
		CategoryDocs: []models.Category{{ID: "c1", Title: "Guides", Slug: "guides"}},
	}
	if a := s.Author(); a == nil || a.Name != "Ash" {
		t.Fatalf("expected first author, got %+v", a)
	}
	if c := s.Category(); c == nil || c.Slug != "guides" {
		t.Fatalf("expected first category, got %+v", c)
	}

	empty := BlogSnapshot{}
	if empty.Author() != nil || empty.Category() != nil {
		t.Fatal("expected nil author and category on empty snapshot")
	}
}
