package search

import "os"

// Redis key layout for one index, namespaced by the index name:
//
//	<index>:obj:<id>        JSON record of one BlogHit
//	<index>:ids             set of every indexed objectID
//	<index>:inverted:<tok>  zset token -> objectIDs, scored by rank
//	<index>:facet:<a>:<v>   set of objectIDs carrying facet value v
//	<index>:autocomplete    lexical zset of every indexed token
//	<index>:settings        hash of index configuration

func IndexName() string {
	if name := os.Getenv("SEARCH_INDEX_NAME"); name != "" {
		return name
	}
	return "blog_posts"
}

func ObjKey(id string) string            { return IndexName() + ":obj:" + id }
func IDSetKey() string                   { return IndexName() + ":ids" }
func InvertedKey(token string) string    { return IndexName() + ":inverted:" + token }
func FacetKey(attr, value string) string { return IndexName() + ":facet:" + attr + ":" + value }
func AutocompleteKey() string            { return IndexName() + ":autocomplete" }
func SettingsKey() string                { return IndexName() + ":settings" }
