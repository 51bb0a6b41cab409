package models

// Pokemon is a denormalized snapshot fetched once from PokeAPI and stored
// inside a blog document. It is never re-fetched or revalidated; staleness
// is accepted.
type Pokemon struct {
	ID        int      `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Types     []string `bson:"types" json:"types"`
	SpriteURL string   `bson:"spriteUrl" json:"spriteUrl"`
	Height    int      `bson:"height,omitempty" json:"height,omitempty"` // decimeters
	Weight    int      `bson:"weight,omitempty" json:"weight,omitempty"` // hectograms
}
