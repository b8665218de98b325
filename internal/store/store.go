// Package store contains the Mongo-backed persistence layer. It is the only
// package allowed to touch driver update operators; everything above it works
// with typed documents and the sentinel errors below.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/platefeed/backend/internal/models"
)

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user insert violates the unique
	// email index.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserStore persists user records.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// RecipeUpdate is the set of fields an owner may replace on an existing
// recipe. Everything else on the document is immutable through updates.
type RecipeUpdate struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions []string
	ImageURL     string
}

// RecipeStore persists recipe documents including their embedded likes and
// comments. Each method is a single document operation; the store relies on
// Mongo's per-document atomicity and adds no locking of its own.
type RecipeStore interface {
	Insert(ctx context.Context, recipe *models.Recipe) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error)
	ListAll(ctx context.Context) ([]models.Recipe, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Recipe, error)
	ListLikedBy(ctx context.Context, userID primitive.ObjectID) ([]models.Recipe, error)
	Search(ctx context.Context, query, cuisine string) ([]models.Recipe, error)
	AddLike(ctx context.Context, recipeID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, recipeID, userID primitive.ObjectID) error
	PushComment(ctx context.Context, recipeID primitive.ObjectID, comment models.Comment) error
	SetFields(ctx context.Context, recipeID primitive.ObjectID, update RecipeUpdate) error
	Delete(ctx context.Context, recipeID primitive.ObjectID) error
}
