package blogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pokeblog/cms"
	"pokeblog/db"
	"pokeblog/globals"
	"pokeblog/models"
	"pokeblog/mq"
	"pokeblog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type blogPayload struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Slug             string          `json:"slug"`
	PublishedAt      string          `json:"publishedAt"`
	OrderRank        string          `json:"orderRank"`
	Authors          []string        `json:"authors"`
	CategoryID       string          `json:"categoryId"`
	RichText         []models.Block  `json:"richText"`
	Pokemon          *models.Pokemon `json:"pokemon"`
	ImageURL         string          `json:"imageUrl"`
	SEOHideFromLists bool            `json:"seoHideFromLists"`
	SEONoIndex       bool            `json:"seoNoIndex"`
}

func (p *blogPayload) validate(ctx context.Context, excludeID string) (string, bool) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return "A blog title is required", false
	}

	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Title)
	}
	if !utils.ValidSlug(p.Slug) {
		return "Slug must contain only lowercase letters, numbers and hyphens", false
	}

	// Exactly one author, kept as an array on purpose.
	if len(p.Authors) != 1 {
		return "Exactly one author is required", false
	}
	if p.CategoryID == "" {
		return "Please select a category for this blog post", false
	}
	if p.PublishedAt != "" {
		if _, err := time.Parse("2006-01-02", p.PublishedAt); err != nil {
			return "publishedAt must be a YYYY-MM-DD date", false
		}
	}

	count, err := db.CategoriesCollection.CountDocuments(ctx, bson.M{"_id": p.CategoryID})
	if err != nil || count == 0 {
		return "Unknown category", false
	}

	slugFilter := bson.M{"slug": p.Slug}
	if excludeID != "" {
		slugFilter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err = db.BlogsCollection.CountDocuments(ctx, slugFilter)
	if err != nil || count > 0 {
		return "Slug already in use", false
	}

	return "", true
}

func CreateBlog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	editorID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid editor")
		return
	}

	var payload blogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if msg, ok := payload.validate(r.Context(), ""); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now()
	blog := models.Blog{
		ID:               utils.GetUUID(),
		Type:             "blog",
		Title:            payload.Title,
		Description:      payload.Description,
		Slug:             payload.Slug,
		PublishedAt:      payload.PublishedAt,
		OrderRank:        payload.OrderRank,
		Authors:          payload.Authors,
		CategoryID:       payload.CategoryID,
		RichText:         payload.RichText,
		Pokemon:          payload.Pokemon,
		ImageURL:         payload.ImageURL,
		SEOHideFromLists: payload.SEOHideFromLists,
		SEONoIndex:       payload.SEONoIndex,
		CreatedBy:        editorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if blog.PublishedAt == "" {
		blog.PublishedAt = now.Format("2006-01-02")
	}

	if _, err := db.BlogsCollection.InsertOne(r.Context(), blog); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create blog")
		return
	}

	mq.Emit(r.Context(), models.IndexEvent{EntityType: "blog", Method: "POST", EntityID: blog.ID})
	utils.RespondWithJSON(w, http.StatusCreated, blog)
}

func UpdateBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var payload blogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if msg, ok := payload.validate(r.Context(), id); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	update := bson.M{"$set": bson.M{
		"title":            payload.Title,
		"description":      payload.Description,
		"slug":             payload.Slug,
		"publishedAt":      payload.PublishedAt,
		"orderRank":        payload.OrderRank,
		"authors":          payload.Authors,
		"categoryId":       payload.CategoryID,
		"richText":         payload.RichText,
		"pokemon":          payload.Pokemon,
		"imageUrl":         payload.ImageURL,
		"seoHideFromLists": payload.SEOHideFromLists,
		"seoNoIndex":       payload.SEONoIndex,
		"updatedAt":        time.Now(),
	}}

	res, err := db.BlogsCollection.UpdateOne(r.Context(), bson.M{"_id": id}, update)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update blog")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	mq.Emit(r.Context(), models.IndexEvent{EntityType: "blog", Method: "PUT", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"updated": true, "_id": id})
}

func DeleteBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	res, err := db.BlogsCollection.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete blog")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}

	mq.Emit(r.Context(), models.IndexEvent{EntityType: "blog", Method: "DELETE", EntityID: id})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true, "_id": id})
}

// GetBlog serves one blog by slug from the canonical store.
func GetBlog(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	blog, err := cms.GetBlogBySlug(r.Context(), ps.ByName("slug"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Blog not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch blog")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blog)
}

// ListBlogs pages visible blogs, optionally scoped to a category slug.
// Canonical display always bypasses the search index.
func ListBlogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)

	var (
		items []models.Blog
		total int64
		err   error
	)
	if opts.Category != "" {
		items, total, err = cms.ListBlogsByCategory(r.Context(), opts.Category, opts.Page, opts.Limit)
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
	} else {
		items, total, err = cms.ListBlogs(r.Context(), opts.Page, opts.Limit)
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"blogs": items,
		"total": total,
		"page":  opts.Page,
		"limit": opts.Limit,
	})
}
