package models

// AuthorHit and CategoryHit are the denormalized sub-objects embedded in
// an index record. Optional fields default to empty strings so the
// attribute set stays identical across every object in the index.
type AuthorHit struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

type CategoryHit struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// BlogHit is the flattened search-index projection of a blog document,
// keyed by ObjectID == Blog.ID. The index holds the JSON encoding of this
// struct verbatim, so re-indexing an unchanged document is byte-idempotent.
type BlogHit struct {
	ObjectID    string      `json:"objectID"`
	ID          string      `json:"_id"`
	Type        string      `json:"_type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Slug        string      `json:"slug"`
	PublishedAt string      `json:"publishedAt"`
	OrderRank   string      `json:"orderRank"`
	Author      AuthorHit   `json:"author"`
	Category    CategoryHit `json:"category"`
	Content     string      `json:"content"`
	ImageURL    string      `json:"imageUrl"`

	// SearchBlob is a lowercase concatenation of title, description,
	// content, author name and category title, used as a secondary
	// searchable attribute.
	SearchBlob string `json:"searchBlob"`
}

// Attribute returns the value of one flat or dotted attribute name, the
// form index settings use to reference record fields. Unknown attributes
// resolve to "".
func (h *BlogHit) Attribute(name string) string {
	switch name {
	case "title":
		return h.Title
	case "description":
		return h.Description
	case "content":
		return h.Content
	case "slug":
		return h.Slug
	case "publishedAt":
		return h.PublishedAt
	case "orderRank":
		return h.OrderRank
	case "searchBlob":
		return h.SearchBlob
	case "author.name":
		return h.Author.Name
	case "author.position":
		return h.Author.Position
	case "category.title":
		return h.Category.Title
	case "category.slug":
		return h.Category.Slug
	default:
		return ""
	}
}

// IndexSettings mirrors the search provider's index configuration.
type IndexSettings struct {
	SearchableAttributes  []string `json:"searchableAttributes"`
	AttributesForFaceting []string `json:"attributesForFaceting"`
	CustomRanking         []string `json:"customRanking"`
	HighlightPreTag       string   `json:"highlightPreTag"`
	HighlightPostTag      string   `json:"highlightPostTag"`
	SnippetLength         int      `json:"snippetLength"`
	AttributeForDistinct  string   `json:"attributeForDistinct"`
}

// SearchResponse is what the query-time read path returns: hits plus
// timing/statistics metadata.
type SearchResponse struct {
	Hits             []BlogHit      `json:"hits"`
	NbHits           int            `json:"nbHits"`
	Page             int            `json:"page"`
	NbPages          int            `json:"nbPages"`
	HitsPerPage      int            `json:"hitsPerPage"`
	ProcessingTimeMS int64          `json:"processingTimeMS"`
	Query            string         `json:"query"`
	Facets           map[string]int `json:"facets,omitempty"`
}

// IndexEvent is an incremental indexing message published on blog
// mutations and consumed by the indexing worker.
type IndexEvent struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityID   string `json:"entity_id"`
}
