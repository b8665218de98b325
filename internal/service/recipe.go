package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/platefeed/backend/internal/models"
	"github.com/platefeed/backend/internal/store"
)

// RecipeService carries the recipe business rules: create validation,
// ownership checks, the like toggle and comment appending. It works entirely
// through the store interfaces.
type RecipeService struct {
	recipes store.RecipeStore
	users   store.UserStore
}

func NewRecipeService(recipes store.RecipeStore, users store.UserStore) *RecipeService {
	return &RecipeService{
		recipes: recipes,
		users:   users,
	}
}

// CreateRecipeInput uses pointer fields so an absent field is distinguishable
// from a zero value; validation reports the first missing field in this order.
type CreateRecipeInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	CuisineType  *string   `json:"cuisine_type"`
	CookingTime  *int      `json:"cooking_time"`
	Difficulty   *string   `json:"difficulty"`
	ImageURL     *string   `json:"image_url"`
}

func (in *CreateRecipeInput) firstMissingField() string {
	switch {
	case in.Title == nil:
		return "title"
	case in.Description == nil:
		return "description"
	case in.Ingredients == nil:
		return "ingredients"
	case in.Instructions == nil:
		return "instructions"
	case in.CuisineType == nil:
		return "cuisine_type"
	case in.CookingTime == nil:
		return "cooking_time"
	case in.Difficulty == nil:
		return "difficulty"
	}
	return ""
}

// UpdateRecipeInput is the owner-editable subset of a recipe. Cuisine,
// cooking time, difficulty, owner, likes and comments cannot be changed.
type UpdateRecipeInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	ImageURL     *string   `json:"image_url"`
}

func (in *UpdateRecipeInput) complete() bool {
	return in.Title != nil && in.Description != nil && in.Ingredients != nil && in.Instructions != nil
}

// Create validates the input and persists a new recipe owned by ownerID with
// an empty like set and comment list.
func (s *RecipeService) Create(ctx context.Context, ownerID primitive.ObjectID, in *CreateRecipeInput) (*models.Recipe, error) {
	if f := in.firstMissingField(); f != "" {
		return nil, missingField(f)
	}

	recipe := &models.Recipe{
		Title:        *in.Title,
		Description:  *in.Description,
		Ingredients:  *in.Ingredients,
		Instructions: *in.Instructions,
		CuisineType:  *in.CuisineType,
		CookingTime:  *in.CookingTime,
		Difficulty:   *in.Difficulty,
		UserID:       ownerID,
		CreatedAt:    time.Now().UTC(),
		Likes:        []primitive.ObjectID{},
		Comments:     []models.Comment{},
	}
	if in.ImageURL != nil {
		recipe.ImageURL = *in.ImageURL
	}

	id, err := s.recipes.Insert(ctx, recipe)
	if err != nil {
		return nil, err
	}
	recipe.ID = id
	return recipe, nil
}

// Get returns a single recipe.
func (s *RecipeService) Get(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	return s.recipes.FindByID(ctx, id)
}

// List returns every recipe in store-native order.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.ListAll(ctx)
}

// ListByUser returns userID's recipes, newest first.
func (s *RecipeService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Recipe, error) {
	return s.recipes.ListByOwner(ctx, userID)
}

// ListFavorites returns the recipes whose like set contains userID.
func (s *RecipeService) ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]models.Recipe, error) {
	return s.recipes.ListLikedBy(ctx, userID)
}

// Search filters recipes by substring and cuisine. Records missing a title
// or description are dropped from the output; that is a read-side guard
// against malformed documents, not a write-side rule.
func (s *RecipeService) Search(ctx context.Context, query, cuisine string) ([]models.Recipe, error) {
	recipes, err := s.recipes.Search(ctx, query, cuisine)
	if err != nil {
		return nil, err
	}
	valid := []models.Recipe{}
	for _, r := range recipes {
		if r.Title == "" || r.Description == "" {
			continue
		}
		valid = append(valid, r)
	}
	return valid, nil
}

// ToggleLike flips userID's membership in the recipe's like set and returns
// the new membership state with the resulting count. The decision is made on
// a read that is not linearizable against a concurrent toggle; the store's
// $addToSet/$pull keep the set consistent either way.
func (s *RecipeService) ToggleLike(ctx context.Context, recipeID, userID primitive.ObjectID) (bool, int, error) {
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return false, 0, err
	}

	liked := !recipe.HasLike(userID)
	if liked {
		err = s.recipes.AddLike(ctx, recipeID, userID)
	} else {
		err = s.recipes.RemoveLike(ctx, recipeID, userID)
	}
	if err != nil {
		return false, 0, err
	}

	updated, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return false, 0, err
	}
	return liked, len(updated.Likes), nil
}

// AddComment appends a comment carrying a snapshot of the author's current
// display name and returns the recipe's full comment list.
func (s *RecipeService) AddComment(ctx context.Context, recipeID, userID primitive.ObjectID, content string) ([]models.Comment, error) {
	if content == "" {
		return nil, &ValidationError{Field: "content", Message: "Comment content is required"}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		Content:   content,
		UserID:    userID,
		UserName:  user.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.recipes.PushComment(ctx, recipeID, comment); err != nil {
		return nil, err
	}

	updated, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return updated.Comments, nil
}

// Comments returns a recipe's comment list in insertion order.
func (s *RecipeService) Comments(ctx context.Context, recipeID primitive.ObjectID) ([]models.Comment, error) {
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return recipe.Comments, nil
}

// Update replaces the editable fields of a recipe the caller owns. When no
// image is supplied the stored one is kept.
func (s *RecipeService) Update(ctx context.Context, recipeID, callerID primitive.ObjectID, in *UpdateRecipeInput) error {
	recipe, err := s.requireOwner(ctx, recipeID, callerID)
	if err != nil {
		return err
	}
	if !in.complete() {
		return &ValidationError{Message: "Missing required fields"}
	}

	image := recipe.ImageURL
	if in.ImageURL != nil {
		image = *in.ImageURL
	}

	return s.recipes.SetFields(ctx, recipeID, store.RecipeUpdate{
		Title:        *in.Title,
		Description:  *in.Description,
		Ingredients:  *in.Ingredients,
		Instructions: *in.Instructions,
		ImageURL:     image,
	})
}

// Delete removes a recipe the caller owns, embedded comments and likes
// included, in one document operation.
func (s *RecipeService) Delete(ctx context.Context, recipeID, callerID primitive.ObjectID) error {
	if _, err := s.requireOwner(ctx, recipeID, callerID); err != nil {
		return err
	}
	return s.recipes.Delete(ctx, recipeID)
}

// requireOwner loads the recipe and checks the caller against its owner.
// Absence wins over forbidden: a missing recipe reports ErrNotFound even to
// a caller who could never have owned it.
func (s *RecipeService) requireOwner(ctx context.Context, recipeID, callerID primitive.ObjectID) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != callerID {
		return nil, ErrForbidden
	}
	return recipe, nil
}
