package cms

import (
	"context"

	"pokeblog/db"
	"pokeblog/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CategoryStatsAll resolves every category with its visible-post count and
// its five most recent posts. Used by the analyze report and the category
// listing endpoint.
func CategoryStatsAll(ctx context.Context) ([]models.CategoryStats, error) {
	pipeline := []bson.M{
		{"$sort": bson.M{"sortOrder": 1, "title": 1}},
		{"$lookup": bson.M{
			"from": "blogs",
			"let":  bson.M{"catId": "$_id"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$eq": []string{"$categoryId", "$$catId"}}}},
				{"$match": bson.M{"seoHideFromLists": bson.M{"$ne": true}}},
				{"$sort": bson.M{"publishedAt": -1}},
				{"$project": bson.M{"title": 1, "slug": 1, "publishedAt": 1}},
			},
			"as": "visiblePosts",
		}},
		{"$addFields": bson.M{
			"postCount": bson.M{"$size": "$visiblePosts"},
			"posts":     bson.M{"$slice": []interface{}{"$visiblePosts", 5}},
		}},
		{"$project": bson.M{"visiblePosts": 0}},
	}

	cur, err := db.CategoriesCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var stats []models.CategoryStats
	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// CountUncategorized counts visible blogs with no category reference.
func CountUncategorized(ctx context.Context) (int64, error) {
	filter := bson.M{
		"seoHideFromLists": bson.M{"$ne": true},
		"$or": []bson.M{
			{"categoryId": ""},
			{"categoryId": bson.M{"$exists": false}},
		},
	}
	return db.BlogsCollection.CountDocuments(ctx, filter)
}
