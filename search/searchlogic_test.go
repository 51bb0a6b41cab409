package search

import (
	"strings"
	"testing"

	"pokeblog/models"
)

func hit(id, title, published, orderRank, slug string) models.BlogHit {
	return models.BlogHit{
		ObjectID:    id,
		ID:          id,
		Title:       title,
		Slug:        slug,
		PublishedAt: published,
		OrderRank:   orderRank,
	}
}

func TestSortByCustomRanking(t *testing.T) {
	hits := []models.BlogHit{
		hit("a", "A", "2024-01-01", "0|b", "a"),
		hit("b", "B", "2024-06-01", "0|a", "b"),
		hit("c", "C", "2024-06-01", "0|b", "c"),
	}

	sortByCustomRanking(hits, []string{"desc(publishedAt)", "asc(orderRank)"})

	got := []string{hits[0].ID, hits[1].ID, hits[2].ID}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got order %v, want %v", got, want)
		}
	}
}

func TestSortByCustomRankingIgnoresBadExprs(t *testing.T) {
	hits := []models.BlogHit{
		hit("a", "A", "2024-01-01", "", "a"),
		hit("b", "B", "2024-06-01", "", "b"),
	}
	sortByCustomRanking(hits, []string{"rank(publishedAt)"})
	if hits[0].ID != "a" {
		t.Fatal("unparseable ranking must leave order untouched")
	}
}

func TestDistinctBySlug(t *testing.T) {
	hits := []models.BlogHit{
		hit("a", "First", "", "", "dup"),
		hit("b", "Second", "", "", "dup"),
		hit("c", "Third", "", "", "other"),
		hit("d", "NoSlug", "", "", ""),
	}

	out := distinctBy(hits, "slug")
	if len(out) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(out))
	}
	if out[0].ID != "a" || out[1].ID != "c" || out[2].ID != "d" {
		t.Fatalf("unexpected survivors: %+v", out)
	}
}

func TestDecorateHitHighlights(t *testing.T) {
	h := hit("a", "Pikachu guide", "", "", "pikachu-guide")
	h.Description = "All about pikachu."
	h.Content = "pikachu is an electric type"

	decorateHit(&h, []string{"pikachu"}, DefaultSettings())

	if !strings.Contains(h.Title, "<mark>Pikachu</mark>") {
		t.Fatalf("title not highlighted: %q", h.Title)
	}
	if !strings.Contains(h.Description, "<mark>pikachu</mark>") {
		t.Fatalf("description not highlighted: %q", h.Description)
	}
	if !strings.Contains(h.Content, "<mark>pikachu</mark>") {
		t.Fatalf("content not highlighted: %q", h.Content)
	}
}

func TestSnippetWindowsAroundMatch(t *testing.T) {
	re := tokenPattern([]string{"needle"})
	content := strings.Repeat("x ", 200) + "needle" + strings.Repeat(" y", 200)

	out := snippet(content, re, 80)
	if !strings.Contains(out, "needle") {
		t.Fatalf("snippet lost the match: %q", out)
	}
	if !strings.HasPrefix(out, "…") || !strings.HasSuffix(out, "…") {
		t.Fatalf("expected ellipses on both sides: %q", out)
	}
	if len([]rune(out)) > 82 {
		t.Fatalf("snippet too long: %d runes", len([]rune(out)))
	}
}

func TestSnippetShortContentUntouched(t *testing.T) {
	re := tokenPattern([]string{"short"})
	if got := snippet("short text", re, 160); got != "short text" {
		t.Fatalf("short content must pass through, got %q", got)
	}
}
