package indexer

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"pokeblog/utils"

	"github.com/julienschmidt/httprouter"
)

// ReindexAPI is the HTTP trigger surface for the pipeline, used by both
// the CMS webhook and the manual admin action. Runner is swappable in
// tests.
type ReindexAPI struct {
	Runner func(ctx context.Context) (Result, error)
}

func NewReindexAPI() *ReindexAPI {
	return &ReindexAPI{Runner: Run}
}

// Reindex handles POST /api/search/reindex. Authorization is checked
// against the configured admin key before any pipeline work begins.
func (api *ReindexAPI) Reindex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	adminKey := os.Getenv("SEARCH_ADMIN_KEY")
	if adminKey == "" || r.Header.Get("Authorization") != "Bearer "+adminKey {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"error": "Unauthorized"})
		return
	}

	result, err := api.Runner(r.Context())
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"error":   "Failed to index blog posts",
			"details": err.Error(),
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": fmt.Sprintf("Successfully indexed %d blog posts", result.Count),
		"count":   result.Count,
	})
}

// AdminReindex runs the same pipeline for an already-authenticated
// editor, so no admin key is required here.
func (api *ReindexAPI) AdminReindex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := api.Runner(r.Context())
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"error":   "Failed to index blog posts",
			"details": err.Error(),
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": fmt.Sprintf("Successfully indexed %d blog posts", result.Count),
		"count":   result.Count,
		"removed": result.Removed,
		"skipped": result.Skipped,
	})
}

// Health handles GET on the sibling path: a trivial liveness response.
func (api *ReindexAPI) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":   "Blog reindex API is healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
