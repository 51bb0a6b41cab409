package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"pokeblog/models"
	"pokeblog/rdx"
)

// DefaultSettings is the index configuration the pipeline (re)applies on
// every run: which attributes are searchable, which are facetable, the
// custom ranking order, highlight tags, snippet length and the
// de-duplication key.
func DefaultSettings() models.IndexSettings {
	return models.IndexSettings{
		SearchableAttributes:  []string{"title", "description", "content", "author.name", "searchBlob"},
		AttributesForFaceting: []string{"category.slug", "author.name", "publishedAt"},
		CustomRanking:         []string{"desc(publishedAt)", "asc(orderRank)"},
		HighlightPreTag:       "<mark>",
		HighlightPostTag:      "</mark>",
		SnippetLength:         160,
		AttributeForDistinct:  "slug",
	}
}

// ApplySettings stores the index configuration hash. Callers treat a
// failure here as a warning: content sync matters more than settings
// re-application.
func ApplySettings(ctx context.Context, s models.IndexSettings) error {
	searchable, _ := json.Marshal(s.SearchableAttributes)
	faceting, _ := json.Marshal(s.AttributesForFaceting)
	ranking, _ := json.Marshal(s.CustomRanking)

	err := rdx.Conn.HSet(ctx, SettingsKey(), map[string]interface{}{
		"searchableAttributes":  string(searchable),
		"attributesForFaceting": string(faceting),
		"customRanking":         string(ranking),
		"highlightPreTag":       s.HighlightPreTag,
		"highlightPostTag":      s.HighlightPostTag,
		"snippetLength":         strconv.Itoa(s.SnippetLength),
		"attributeForDistinct":  s.AttributeForDistinct,
	}).Err()
	if err != nil {
		return fmt.Errorf("apply index settings: %w", err)
	}
	return nil
}

// LoadSettings reads the stored configuration, falling back to defaults
// for anything missing or unreadable.
func LoadSettings(ctx context.Context) models.IndexSettings {
	s := DefaultSettings()

	fields, err := rdx.Conn.HGetAll(ctx, SettingsKey()).Result()
	if err != nil || len(fields) == 0 {
		return s
	}

	if v, ok := fields["searchableAttributes"]; ok {
		var attrs []string
		if json.Unmarshal([]byte(v), &attrs) == nil && len(attrs) > 0 {
			s.SearchableAttributes = attrs
		}
	}
	if v, ok := fields["attributesForFaceting"]; ok {
		var attrs []string
		if json.Unmarshal([]byte(v), &attrs) == nil && len(attrs) > 0 {
			s.AttributesForFaceting = attrs
		}
	}
	if v, ok := fields["customRanking"]; ok {
		var ranking []string
		if json.Unmarshal([]byte(v), &ranking) == nil && len(ranking) > 0 {
			s.CustomRanking = ranking
		}
	}
	if v, ok := fields["highlightPreTag"]; ok && v != "" {
		s.HighlightPreTag = v
	}
	if v, ok := fields["highlightPostTag"]; ok && v != "" {
		s.HighlightPostTag = v
	}
	if v, ok := fields["snippetLength"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.SnippetLength = n
		}
	}
	if v, ok := fields["attributeForDistinct"]; ok && v != "" {
		s.AttributeForDistinct = v
	}
	return s
}
