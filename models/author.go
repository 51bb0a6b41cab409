package models

import "time"

type Author struct {
	ID        string    `bson:"_id" json:"_id"`
	Type      string    `bson:"_type" json:"_type"`
	Name      string    `bson:"name" json:"name"`
	Position  string    `bson:"position,omitempty" json:"position,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Editor is a CMS login account, not a content document.
type Editor struct {
	EditorID     string    `bson:"editorid" json:"editorid"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         []string  `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	LastLogin    time.Time `bson:"last_login,omitempty" json:"-"`
}
