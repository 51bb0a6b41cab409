package indexer

import (
	"strings"

	"pokeblog/cms"
	"pokeblog/models"
)

// Transform maps raw CMS snapshots into flat index objects. The object
// identifier equals the document's own identity, so every reindex is a
// replace-by-id, never an append. Missing optional fields become empty
// strings to keep the attribute set stable across documents.
//
// Documents without a title cannot be indexed; they are skipped and the
// skip count is returned so the caller can surface the mismatch.
func Transform(snapshots []cms.BlogSnapshot) ([]models.BlogHit, int) {
	hits := make([]models.BlogHit, 0, len(snapshots))
	skipped := 0

	for i := range snapshots {
		s := &snapshots[i]
		if strings.TrimSpace(s.Title) == "" {
			skipped++
			continue
		}

		docType := s.Blog.Type
		if docType == "" {
			docType = "blog"
		}

		hit := models.BlogHit{
			ObjectID:    s.ID,
			ID:          s.ID,
			Type:        docType,
			Title:       s.Title,
			Description: s.Description,
			Slug:        s.Slug,
			PublishedAt: s.PublishedAt,
			OrderRank:   s.OrderRank,
			Content:     cms.FlattenRichText(s.RichText),
			ImageURL:    s.ImageURL,
		}

		if a := s.Author(); a != nil {
			hit.Author = models.AuthorHit{Name: a.Name, Position: a.Position}
		}
		if c := s.Category(); c != nil {
			hit.Category = models.CategoryHit{
				ID:    c.ID,
				Title: c.Title,
				Slug:  c.Slug,
				Color: c.Color,
				Icon:  c.Icon,
			}
		}

		hit.SearchBlob = searchBlob(hit)
		hits = append(hits, hit)
	}

	return hits, skipped
}

// searchBlob derives the lowercase concatenation of title, description,
// content, author name and category title used as a secondary searchable
// attribute. Whitespace is collapsed so the result is deterministic.
func searchBlob(hit models.BlogHit) string {
	joined := strings.Join([]string{
		hit.Title,
		hit.Description,
		hit.Content,
		hit.Author.Name,
		hit.Category.Title,
	}, " ")
	return strings.ToLower(strings.Join(strings.Fields(joined), " "))
}
