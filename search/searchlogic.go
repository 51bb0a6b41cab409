package search

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"pokeblog/models"
	"pokeblog/rdx"

	"github.com/redis/go-redis/v9"
)

// Query runs a free-text search over the index: tokenized intersection,
// optional category facet filter, custom ranking, de-duplication, facet
// counts, then highlighting and snippeting of the returned page.
func Query(ctx context.Context, q, categorySlug string, page, hitsPerPage int) (models.SearchResponse, error) {
	start := time.Now()
	if page < 1 {
		page = 1
	}
	if hitsPerPage < 1 {
		hitsPerPage = 10
	}

	resp := models.SearchResponse{
		Hits:        []models.BlogHit{},
		Query:       q,
		Page:        page,
		HitsPerPage: hitsPerPage,
	}

	tokens := Tokenize(q)
	if len(tokens) == 0 {
		resp.ProcessingTimeMS = time.Since(start).Milliseconds()
		return resp, nil
	}

	ids, err := intersectTokens(ctx, tokens)
	if err != nil {
		return resp, err
	}

	if categorySlug != "" && len(ids) > 0 {
		ids, err = filterByFacet(ctx, ids, "category.slug", categorySlug)
		if err != nil {
			return resp, err
		}
	}

	hits, err := fetchHits(ctx, ids)
	if err != nil {
		return resp, err
	}

	settings := LoadSettings(ctx)
	sortByCustomRanking(hits, settings.CustomRanking)
	hits = distinctBy(hits, settings.AttributeForDistinct)

	facets := map[string]int{}
	for i := range hits {
		if slug := hits[i].Category.Slug; slug != "" {
			facets[slug]++
		}
	}

	resp.NbHits = len(hits)
	resp.NbPages = (len(hits) + hitsPerPage - 1) / hitsPerPage
	resp.Facets = facets

	lo := (page - 1) * hitsPerPage
	if lo < len(hits) {
		hi := lo + hitsPerPage
		if hi > len(hits) {
			hi = len(hits)
		}
		pageHits := make([]models.BlogHit, hi-lo)
		copy(pageHits, hits[lo:hi])
		for i := range pageHits {
			decorateHit(&pageHits[i], tokens, settings)
		}
		resp.Hits = pageHits
	}

	resp.ProcessingTimeMS = time.Since(start).Milliseconds()
	return resp, nil
}

// intersectTokens resolves every token's posting list concurrently, then
// intersects them starting from the smallest list, preserving its score
// order.
func intersectTokens(ctx context.Context, tokens []string) ([]string, error) {
	type tokenList struct {
		ids []string
		err error
	}
	tl := make([]tokenList, len(tokens))

	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			ids, err := rdx.Conn.ZRevRange(ctx, InvertedKey(token), 0, -1).Result()
			tl[i] = tokenList{ids: ids, err: err}
		}(i, token)
	}
	wg.Wait()

	for _, t := range tl {
		if t.err != nil {
			return nil, t.err
		}
		if len(t.ids) == 0 {
			return nil, nil
		}
	}

	sort.Slice(tl, func(i, j int) bool { return len(tl[i].ids) < len(tl[j].ids) })
	base := tl[0].ids

	otherSets := make([]map[string]struct{}, len(tl)-1)
	for i := 1; i < len(tl); i++ {
		m := make(map[string]struct{}, len(tl[i].ids))
		for _, id := range tl[i].ids {
			m[id] = struct{}{}
		}
		otherSets[i-1] = m
	}

	out := make([]string, 0, len(base))
	for _, id := range base {
		match := true
		for _, s := range otherSets {
			if _, ok := s[id]; !ok {
				match = false
				break
			}
		}
		if match {
			out = append(out, id)
		}
	}
	return out, nil
}

func filterByFacet(ctx context.Context, ids []string, attr, value string) ([]string, error) {
	members, err := rdx.Conn.SMembers(ctx, FacetKey(attr, value)).Result()
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]struct{}, len(members))
	for _, m := range members {
		allowed[m] = struct{}{}
	}
	out := ids[:0]
	for _, id := range ids {
		if _, ok := allowed[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func fetchHits(ctx context.Context, ids []string) ([]models.BlogHit, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = ObjKey(id)
	}
	raws, err := rdx.Conn.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	hits := make([]models.BlogHit, 0, len(raws))
	for _, raw := range raws {
		s, ok := raw.(string)
		if !ok {
			continue
		}
		var hit models.BlogHit
		if err := json.Unmarshal([]byte(s), &hit); err != nil {
			continue
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// sortByCustomRanking applies the ranking expression list in order, e.g.
// ["desc(publishedAt)", "asc(orderRank)"].
func sortByCustomRanking(hits []models.BlogHit, ranking []string) {
	type criterion struct {
		attr string
		desc bool
	}
	var criteria []criterion
	for _, expr := range ranking {
		switch {
		case strings.HasPrefix(expr, "desc(") && strings.HasSuffix(expr, ")"):
			criteria = append(criteria, criterion{attr: expr[5 : len(expr)-1], desc: true})
		case strings.HasPrefix(expr, "asc(") && strings.HasSuffix(expr, ")"):
			criteria = append(criteria, criterion{attr: expr[4 : len(expr)-1]})
		}
	}
	if len(criteria) == 0 {
		return
	}

	sort.SliceStable(hits, func(i, j int) bool {
		for _, c := range criteria {
			vi, vj := hits[i].Attribute(c.attr), hits[j].Attribute(c.attr)
			if vi == vj {
				continue
			}
			if c.desc {
				return vi > vj
			}
			return vi < vj
		}
		return false
	})
}

// distinctBy keeps the first (best-ranked) hit per distinct attribute
// value. Hits with an empty value are always kept.
func distinctBy(hits []models.BlogHit, attr string) []models.BlogHit {
	if attr == "" {
		return hits
	}
	seen := map[string]struct{}{}
	out := hits[:0]
	for i := range hits {
		v := hits[i].Attribute(attr)
		if v != "" {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
		}
		out = append(out, hits[i])
	}
	return out
}

// decorateHit wraps matched tokens in the configured highlight tags on
// title and description and replaces the content with a highlighted
// snippet around the first match.
func decorateHit(hit *models.BlogHit, tokens []string, settings models.IndexSettings) {
	re := tokenPattern(tokens)
	if re == nil {
		return
	}
	repl := settings.HighlightPreTag + "$1" + settings.HighlightPostTag

	hit.Title = re.ReplaceAllString(hit.Title, repl)
	hit.Description = re.ReplaceAllString(hit.Description, repl)
	hit.Content = re.ReplaceAllString(snippet(hit.Content, re, settings.SnippetLength), repl)
}

func tokenPattern(tokens []string) *regexp.Regexp {
	if len(tokens) == 0 {
		return nil
	}
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = regexp.QuoteMeta(t)
	}
	re, err := regexp.Compile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil
	}
	return re
}

// snippet cuts a window of at most maxLen runes around the first token
// match, marking truncation with an ellipsis on each trimmed side.
func snippet(content string, re *regexp.Regexp, maxLen int) string {
	if maxLen <= 0 || len(content) <= maxLen {
		return content
	}

	runes := []rune(content)
	startRune := 0
	if loc := re.FindStringIndex(content); loc != nil {
		matchRune := len([]rune(content[:loc[0]]))
		startRune = matchRune - maxLen/4
		if startRune < 0 {
			startRune = 0
		}
	}
	endRune := startRune + maxLen
	if endRune > len(runes) {
		endRune = len(runes)
		startRune = endRune - maxLen
		if startRune < 0 {
			startRune = 0
		}
	}

	out := string(runes[startRune:endRune])
	if startRune > 0 {
		out = "…" + out
	}
	if endRune < len(runes) {
		out += "…"
	}
	return out
}
