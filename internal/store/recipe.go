package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/platefeed/backend/internal/models"
)

// MongoRecipeStore implements RecipeStore over the recipes collection.
type MongoRecipeStore struct {
	col *mongo.Collection
}

// NewMongoRecipeStore creates a recipe store over db's recipes collection.
func NewMongoRecipeStore(db *mongo.Database) *MongoRecipeStore {
	return &MongoRecipeStore{col: db.Collection("recipes")}
}

func (s *MongoRecipeStore) Insert(ctx context.Context, recipe *models.Recipe) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, recipe)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting recipe: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *MongoRecipeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding recipe: %w", err)
	}
	recipe.Normalize()
	return &recipe, nil
}

func (s *MongoRecipeStore) ListAll(ctx context.Context) ([]models.Recipe, error) {
	return s.find(ctx, bson.M{}, nil)
}

func (s *MongoRecipeStore) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Recipe, error) {
	return s.find(ctx, bson.M{"user_id": ownerID}, newestFirst())
}

func (s *MongoRecipeStore) ListLikedBy(ctx context.Context, userID primitive.ObjectID) ([]models.Recipe, error) {
	return s.find(ctx, bson.M{"likes": userID}, nil)
}

// Search matches query as a case-insensitive literal substring against
// title, description and any ingredient, and restricts to an exact cuisine
// when one is given. Results come back newest first.
func (s *MongoRecipeStore) Search(ctx context.Context, query, cuisine string) ([]models.Recipe, error) {
	filter := bson.M{}
	if query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"ingredients": re},
		}
	}
	if cuisine != "" {
		filter["cuisine_type"] = cuisine
	}
	return s.find(ctx, filter, newestFirst())
}

func (s *MongoRecipeStore) AddLike(ctx context.Context, recipeID, userID primitive.ObjectID) error {
	return s.updateOne(ctx, recipeID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (s *MongoRecipeStore) RemoveLike(ctx context.Context, recipeID, userID primitive.ObjectID) error {
	return s.updateOne(ctx, recipeID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (s *MongoRecipeStore) PushComment(ctx context.Context, recipeID primitive.ObjectID, comment models.Comment) error {
	return s.updateOne(ctx, recipeID, bson.M{"$push": bson.M{"comments": comment}})
}

func (s *MongoRecipeStore) SetFields(ctx context.Context, recipeID primitive.ObjectID, update RecipeUpdate) error {
	return s.updateOne(ctx, recipeID, bson.M{"$set": bson.M{
		"title":        update.Title,
		"description":  update.Description,
		"ingredients":  update.Ingredients,
		"instructions": update.Instructions,
		"image_url":    update.ImageURL,
	}})
}

func (s *MongoRecipeStore) Delete(ctx context.Context, recipeID primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": recipeID})
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoRecipeStore) updateOne(ctx context.Context, recipeID primitive.ObjectID, update bson.M) error {
	res, err := s.col.UpdateByID(ctx, recipeID, update)
	if err != nil {
		return fmt.Errorf("updating recipe: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoRecipeStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Recipe, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = s.col.Find(ctx, filter, opts)
	} else {
		cur, err = s.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer cur.Close(ctx)

	recipes := []models.Recipe{}
	if err := cur.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("decoding recipes: %w", err)
	}
	for i := range recipes {
		recipes[i].Normalize()
	}
	return recipes, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}
