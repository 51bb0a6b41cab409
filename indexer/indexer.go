package indexer

import (
	"context"
	"fmt"
	"log"

	"pokeblog/cms"
	"pokeblog/models"
	"pokeblog/search"
)

// Result reports a completed pipeline run. Count is the number of objects
// upserted; Skipped counts documents the transform could not index;
// Removed counts stale objects deleted during reconciliation.
type Result struct {
	Count   int
	Skipped int
	Removed int
	Hits    []models.BlogHit
}

// Run executes the full pipeline once: query the CMS snapshot, transform
// it, re-apply index settings, upsert every object and reconcile
// deletions. A query failure aborts before any index mutation; a settings
// failure only warns.
func Run(ctx context.Context) (Result, error) {
	log.Println("[Indexer] Fetching blog posts from CMS...")
	snapshots, err := cms.BlogsForIndexing(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("content query: %w", err)
	}

	hits, skipped := Transform(snapshots)
	if skipped > 0 {
		log.Printf("[Indexer] WARNING: skipped %d of %d documents (missing title)", skipped, len(snapshots))
	}

	if err := search.ApplySettings(ctx, search.DefaultSettings()); err != nil {
		log.Printf("[Indexer] WARNING: settings re-application failed: %v", err)
	}

	log.Printf("[Indexer] Indexing %d blog posts...", len(hits))
	if err := SaveObjects(ctx, hits); err != nil {
		return Result{}, fmt.Errorf("index sync: %w", err)
	}

	eligible := make([]string, len(hits))
	for i, h := range hits {
		eligible[i] = h.ObjectID
	}
	removed, err := Reconcile(ctx, eligible)
	if err != nil {
		return Result{}, fmt.Errorf("reconcile: %w", err)
	}
	if removed > 0 {
		log.Printf("[Indexer] Removed %d stale objects from the index", removed)
	}

	log.Printf("[Indexer] Successfully indexed %d blog posts", len(hits))
	return Result{Count: len(hits), Skipped: skipped, Removed: removed, Hits: hits}, nil
}
