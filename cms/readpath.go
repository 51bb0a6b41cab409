package cms

import (
	"context"
	"fmt"

	"pokeblog/db"
	"pokeblog/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The read path always serves canonical content from MongoDB; the search
// index is never consulted for page rendering.

func listableFilter() bson.M {
	return bson.M{"seoHideFromLists": bson.M{"$ne": true}}
}

// ListBlogs returns one page of visible blogs, newest first, plus the
// total count for pagination.
func ListBlogs(ctx context.Context, page, limit int) ([]models.Blog, int64, error) {
	return listBlogs(ctx, listableFilter(), page, limit)
}

// ListBlogsByCategory pages visible blogs belonging to the category with
// the given slug.
func ListBlogsByCategory(ctx context.Context, slug string, page, limit int) ([]models.Blog, int64, error) {
	var cat models.Category
	if err := db.CategoriesCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&cat); err != nil {
		return nil, 0, fmt.Errorf("category %q: %w", slug, err)
	}
	filter := listableFilter()
	filter["categoryId"] = cat.ID
	return listBlogs(ctx, filter, page, limit)
}

func listBlogs(ctx context.Context, filter bson.M, page, limit int) ([]models.Blog, int64, error) {
	total, err := db.BlogsCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}, {Key: "orderRank", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := db.BlogsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	blogs := []models.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func GetBlogBySlug(ctx context.Context, slug string) (models.Blog, error) {
	var blog models.Blog
	err := db.BlogsCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&blog)
	return blog, err
}

// ListCategories returns all categories ordered by sortOrder then title.
func ListCategories(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "title", Value: 1}})
	cur, err := db.CategoriesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	cats := []models.Category{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
