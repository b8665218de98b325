package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment lives inside its recipe document. UserName is a snapshot of the
// author's display name at the time the comment was written; it is not
// refreshed if the author later renames themselves.
type Comment struct {
	Content   string             `bson:"content" json:"content"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Recipe is a top-level document. Likes is a membership set of user ids,
// mutated only through $addToSet/$pull; Comments is append-only.
type Recipe struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title        string               `bson:"title" json:"title"`
	Description  string               `bson:"description" json:"description"`
	Ingredients  []string             `bson:"ingredients" json:"ingredients"`
	Instructions []string             `bson:"instructions" json:"instructions"`
	CuisineType  string               `bson:"cuisine_type" json:"cuisine_type"`
	CookingTime  int                  `bson:"cooking_time" json:"cooking_time"`
	Difficulty   string               `bson:"difficulty" json:"difficulty"`
	ImageURL     string               `bson:"image_url" json:"image_url"`
	UserID       primitive.ObjectID   `bson:"user_id" json:"user_id"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
	Likes        []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments     []Comment            `bson:"comments" json:"comments"`
}

// Normalize replaces nil slices with empty ones so documents written before
// likes/comments existed still serialize as [] rather than null.
func (r *Recipe) Normalize() {
	if r.Likes == nil {
		r.Likes = []primitive.ObjectID{}
	}
	if r.Comments == nil {
		r.Comments = []Comment{}
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
}

// HasLike reports whether userID is in the like set.
func (r *Recipe) HasLike(userID primitive.ObjectID) bool {
	for _, id := range r.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
