package mq

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"pokeblog/cms"
	"pokeblog/indexer"
	"pokeblog/models"
	"pokeblog/rdx"
)

const indexChannel = "indexing-events"

// Emit publishes an indexing event for the worker instead of mutating the
// index inline with the request.
func Emit(ctx context.Context, event models.IndexEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, indexChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
		return
	}
	log.Printf("[Emit] Published %s %s/%s", event.Method, event.EntityType, event.EntityID)
}

// StartIndexingWorker subscribes to the indexing channel and applies
// single-entity updates to the search index. The full pipeline remains
// the authority; the worker just keeps the index fresh between runs.
func StartIndexingWorker(ctx context.Context) {
	sub := rdx.Conn.Subscribe(ctx, indexChannel)
	ch := sub.Channel()

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	log.Println("[IndexingWorker] Listening for indexing events...")

	for msg := range ch {
		var event models.IndexEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] Failed to parse event: %v", err)
			continue
		}

		if err := apply(ctx, event); err != nil {
			log.Printf("[IndexingWorker] %s %s failed: %v", event.Method, event.EntityID, err)
		}
	}
}

func apply(ctx context.Context, event models.IndexEvent) error {
	if event.EntityType != "blog" {
		// Category/author edits change denormalized fields on many
		// objects; the next full pipeline run picks those up.
		return nil
	}

	switch strings.ToUpper(event.Method) {
	case "DELETE":
		return indexer.DeleteObject(ctx, event.EntityID)

	case "POST", "PUT", "PATCH":
		snapshot, err := cms.BlogSnapshotByID(ctx, event.EntityID)
		if err != nil {
			return err
		}
		if snapshot == nil || snapshot.SEOHideFromLists {
			// Gone or no longer eligible: tombstone it out.
			return indexer.DeleteObject(ctx, event.EntityID)
		}

		hits, skipped := indexer.Transform([]cms.BlogSnapshot{*snapshot})
		if skipped > 0 {
			log.Printf("[IndexingWorker] %s not indexable (missing title)", event.EntityID)
			return nil
		}
		return indexer.SaveObjects(ctx, hits)

	default:
		log.Printf("[IndexingWorker] Unsupported method %q", event.Method)
		return nil
	}
}
