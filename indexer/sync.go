package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pokeblog/models"
	"pokeblog/rdx"
	"pokeblog/search"

	"github.com/redis/go-redis/v9"
)

// SaveObjects upserts every transformed object into the index by
// identifier. Re-indexing the same document with different content leaves
// the later write authoritative; postings for tokens the document no
// longer carries are removed.
func SaveObjects(ctx context.Context, hits []models.BlogHit) error {
	settings := search.LoadSettings(ctx)
	for i := range hits {
		if err := replaceObject(ctx, &hits[i], settings); err != nil {
			return fmt.Errorf("save object %s: %w", hits[i].ObjectID, err)
		}
	}
	return nil
}

func replaceObject(ctx context.Context, hit *models.BlogHit, settings models.IndexSettings) error {
	data, err := json.Marshal(hit)
	if err != nil {
		return err
	}

	oldTokens := map[string]struct{}{}
	oldFacets := map[string]struct{}{}
	if old, ok, err := fetchIndexed(ctx, hit.ObjectID); err != nil {
		return err
	} else if ok {
		for _, t := range tokensForHit(old, settings.SearchableAttributes) {
			oldTokens[t] = struct{}{}
		}
		for _, f := range facetEntries(old, settings.AttributesForFaceting) {
			oldFacets[f] = struct{}{}
		}
	}

	newTokens := tokensForHit(hit, settings.SearchableAttributes)
	newFacets := facetEntries(hit, settings.AttributesForFaceting)
	score := rankScore(hit)

	pipe := rdx.Conn.Pipeline()
	pipe.Set(ctx, search.ObjKey(hit.ObjectID), data, 0)
	pipe.SAdd(ctx, search.IDSetKey(), hit.ObjectID)

	// ZAdd refreshes the rank score of retained tokens as a side effect.
	for _, token := range newTokens {
		pipe.ZAdd(ctx, search.InvertedKey(token), redis.Z{Score: score, Member: hit.ObjectID})
		pipe.ZAdd(ctx, search.AutocompleteKey(), redis.Z{Score: 0, Member: token})
		delete(oldTokens, token)
	}
	for token := range oldTokens {
		pipe.ZRem(ctx, search.InvertedKey(token), hit.ObjectID)
	}

	for _, facet := range newFacets {
		pipe.SAdd(ctx, facet, hit.ObjectID)
		delete(oldFacets, facet)
	}
	for facet := range oldFacets {
		pipe.SRem(ctx, facet, hit.ObjectID)
	}

	_, err = pipe.Exec(ctx)
	return err
}

// DeleteObject removes one object and all of its postings from the index.
// Deleting an id that was never indexed is a no-op.
func DeleteObject(ctx context.Context, id string) error {
	old, ok, err := fetchIndexed(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return rdx.Conn.SRem(ctx, search.IDSetKey(), id).Err()
	}

	settings := search.LoadSettings(ctx)
	pipe := rdx.Conn.Pipeline()
	for _, token := range tokensForHit(old, settings.SearchableAttributes) {
		pipe.ZRem(ctx, search.InvertedKey(token), id)
	}
	for _, facet := range facetEntries(old, settings.AttributesForFaceting) {
		pipe.SRem(ctx, facet, id)
	}
	pipe.Del(ctx, search.ObjKey(id))
	pipe.SRem(ctx, search.IDSetKey(), id)
	_, err = pipe.Exec(ctx)
	return err
}

// Reconcile deletes every indexed object whose id is absent from the
// current eligible set, so hidden or removed documents leave the index on
// the run after they disappear from the CMS snapshot.
func Reconcile(ctx context.Context, eligible []string) (int, error) {
	indexed, err := rdx.Conn.SMembers(ctx, search.IDSetKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("list indexed ids: %w", err)
	}

	keep := make(map[string]struct{}, len(eligible))
	for _, id := range eligible {
		keep[id] = struct{}{}
	}

	removed := 0
	for _, id := range indexed {
		if _, ok := keep[id]; ok {
			continue
		}
		if err := DeleteObject(ctx, id); err != nil {
			return removed, fmt.Errorf("reconcile delete %s: %w", id, err)
		}
		removed++
	}
	return removed, nil
}

func fetchIndexed(ctx context.Context, id string) (*models.BlogHit, bool, error) {
	raw, err := rdx.Conn.Get(ctx, search.ObjKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var hit models.BlogHit
	if err := json.Unmarshal([]byte(raw), &hit); err != nil {
		// Unreadable record: treat as absent so the overwrite heals it.
		return nil, false, nil
	}
	return &hit, true, nil
}

// tokensForHit tokenizes only the configured searchable attributes.
func tokensForHit(hit *models.BlogHit, searchable []string) []string {
	var parts []string
	for _, attr := range searchable {
		if v := hit.Attribute(attr); v != "" {
			parts = append(parts, v)
		}
	}
	return search.Tokenize(strings.Join(parts, " "))
}

func facetEntries(hit *models.BlogHit, faceting []string) []string {
	var keys []string
	for _, attr := range faceting {
		if v := hit.Attribute(attr); v != "" {
			keys = append(keys, search.FacetKey(attr, v))
		}
	}
	return keys
}

// rankScore is the primary custom-ranking component: publication date
// descending. Ties are broken at query time by orderRank ascending.
func rankScore(hit *models.BlogHit) float64 {
	if hit.PublishedAt == "" {
		return 0
	}
	t, err := time.Parse("2006-01-02", hit.PublishedAt)
	if err != nil {
		return 0
	}
	return float64(t.Unix())
}
