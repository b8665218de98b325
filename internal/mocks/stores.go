package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/platefeed/backend/internal/models"
	"github.com/platefeed/backend/internal/store"
)

// MockUserStore is a mock implementation of store.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockRecipeStore is a mock implementation of store.RecipeStore
type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) Insert(ctx context.Context, recipe *models.Recipe) (primitive.ObjectID, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockRecipeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) ListAll(ctx context.Context) ([]models.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Recipe, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) ListLikedBy(ctx context.Context, userID primitive.ObjectID) ([]models.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Search(ctx context.Context, query, cuisine string) ([]models.Recipe, error) {
	args := m.Called(ctx, query, cuisine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) AddLike(ctx context.Context, recipeID, userID primitive.ObjectID) error {
	args := m.Called(ctx, recipeID, userID)
	return args.Error(0)
}

func (m *MockRecipeStore) RemoveLike(ctx context.Context, recipeID, userID primitive.ObjectID) error {
	args := m.Called(ctx, recipeID, userID)
	return args.Error(0)
}

func (m *MockRecipeStore) PushComment(ctx context.Context, recipeID primitive.ObjectID, comment models.Comment) error {
	args := m.Called(ctx, recipeID, comment)
	return args.Error(0)
}

func (m *MockRecipeStore) SetFields(ctx context.Context, recipeID primitive.ObjectID, update store.RecipeUpdate) error {
	args := m.Called(ctx, recipeID, update)
	return args.Error(0)
}

func (m *MockRecipeStore) Delete(ctx context.Context, recipeID primitive.ObjectID) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

// MockTokenValidator is a mock implementation of middleware.TokenValidator
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(token string) (primitive.ObjectID, error) {
	args := m.Called(token)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
