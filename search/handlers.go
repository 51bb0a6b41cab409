package search

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"pokeblog/rdx"
	"pokeblog/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
)

var queryCache = NewQueryCache(256, 5*time.Minute)

// SearchHandler serves GET /api/search?q=&category=&page=&limit=.
// Responses are cached per literal query+filter for the cache TTL.
func SearchHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	q := strings.TrimSpace(opts.Search)

	key := fmt.Sprintf("%s|%s|%d|%d", q, opts.Category, opts.Page, opts.Limit)
	if resp, ok := queryCache.Get(key); ok {
		utils.RespondWithJSON(w, http.StatusOK, resp)
		return
	}

	resp, err := Query(r.Context(), q, opts.Category, opts.Page, opts.Limit)
	if err != nil {
		log.Printf("[SearchHandler] query %q failed: %v", q, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	queryCache.Set(key, resp)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// SuggestHandler serves GET /api/search/suggest?q= with prefix
// completions from the autocomplete zset.
func SuggestHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	prefix := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if prefix == "" {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"suggestions": []string{}})
		return
	}

	results, err := rdx.Conn.ZRangeByLex(r.Context(), AutocompleteKey(), &redis.ZRangeBy{
		Min:    "[" + prefix,
		Max:    "[" + prefix + "\xff",
		Offset: 0,
		Count:  10,
	}).Result()
	if err != nil {
		log.Printf("[SuggestHandler] prefix %q failed: %v", prefix, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Suggest failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"suggestions": results})
}
