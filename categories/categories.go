package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pokeblog/cms"
	"pokeblog/db"
	"pokeblog/models"
	"pokeblog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type categoryPayload struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Featured    bool   `json:"featured"`
	SortOrder   *int   `json:"sortOrder"`
}

func (p *categoryPayload) validate(ctx context.Context, excludeID string) (string, bool) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return "Category name is required", false
	}

	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Title)
	}
	if !utils.ValidSlug(p.Slug) {
		return "Slug should only contain lowercase letters, numbers, and hyphens", false
	}

	if p.Color == "" {
		p.Color = "blue"
	}
	if !utils.Contains(models.CategoryColors, p.Color) {
		return "Color must be one of: " + strings.Join(models.CategoryColors, ", "), false
	}

	slugFilter := bson.M{"slug": p.Slug}
	if excludeID != "" {
		slugFilter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := db.CategoriesCollection.CountDocuments(ctx, slugFilter)
	if err != nil || count > 0 {
		return "Slug already in use", false
	}

	return "", true
}

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if msg, ok := payload.validate(r.Context(), ""); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	sortOrder := 100
	if payload.SortOrder != nil {
		sortOrder = *payload.SortOrder
	}

	now := time.Now()
	cat := models.Category{
		ID:          utils.GetUUID(),
		Type:        "category",
		Title:       payload.Title,
		Slug:        payload.Slug,
		Description: payload.Description,
		Color:       payload.Color,
		Icon:        payload.Icon,
		Featured:    payload.Featured,
		SortOrder:   sortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.CategoriesCollection.InsertOne(r.Context(), cat); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, cat)
}

func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if msg, ok := payload.validate(r.Context(), id); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	set := bson.M{
		"title":       payload.Title,
		"slug":        payload.Slug,
		"description": payload.Description,
		"color":       payload.Color,
		"icon":        payload.Icon,
		"featured":    payload.Featured,
		"updatedAt":   time.Now(),
	}
	if payload.SortOrder != nil {
		set["sortOrder"] = *payload.SortOrder
	}

	res, err := db.CategoriesCollection.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"updated": true, "_id": id})
}

func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	// Refuse to orphan posts; reassign them first.
	inUse, err := db.BlogsCollection.CountDocuments(r.Context(), bson.M{"categoryId": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check category usage")
		return
	}
	if inUse > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Category still referenced by blog posts")
		return
	}

	res, err := db.CategoriesCollection.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true, "_id": id})
}

// ListCategoryOptions returns the raw category documents for editor
// dropdowns, without post counts.
func ListCategoryOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cats, err := cms.ListCategories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"categories": cats})
}

// ListCategories returns all categories with visible-post counts, ordered
// by sortOrder then title.
func ListCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := cms.CategoryStatsAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	if stats == nil {
		stats = []models.CategoryStats{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"categories": stats})
}
