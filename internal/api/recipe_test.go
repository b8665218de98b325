package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/platefeed/backend/internal/api"
	"github.com/platefeed/backend/internal/mocks"
	"github.com/platefeed/backend/internal/models"
	"github.com/platefeed/backend/internal/service"
	"github.com/platefeed/backend/internal/store"
)

type recipeAPIEnv struct {
	router  *gin.Engine
	recipes *mocks.MockRecipeStore
	users   *mocks.MockUserStore
	auth    *service.AuthService
}

func setupRecipeAPI(t *testing.T) *recipeAPIEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recipes := new(mocks.MockRecipeStore)
	users := new(mocks.MockUserStore)
	authSvc := service.NewAuthService(users, "test-secret")
	recipeSvc := service.NewRecipeService(recipes, users)
	handler := api.NewRecipeHandler(recipeSvc, authSvc, zap.NewNop())

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return &recipeAPIEnv{router: router, recipes: recipes, users: users, auth: authSvc}
}

func (e *recipeAPIEnv) token(t *testing.T, userID primitive.ObjectID) string {
	t.Helper()
	token, err := e.auth.GenerateToken(userID)
	require.NoError(t, err)
	return token
}

func (e *recipeAPIEnv) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func fullRecipeBody() gin.H {
	return gin.H{
		"title":        "Pad Thai",
		"description":  "Stir-fried noodles",
		"ingredients":  []string{"rice noodles", "tamarind"},
		"instructions": []string{"soak", "fry"},
		"cuisine_type": "Thai",
		"cooking_time": 30,
		"difficulty":   "medium",
	}
}

func TestListRecipesEndpoint(t *testing.T) {
	env := setupRecipeAPI(t)
	env.recipes.On("ListAll", mock.Anything).Return([]models.Recipe{}, nil).Once()

	w := env.get(t, "/api/recipes", "")
	require.Equal(t, http.StatusOK, w.Code)
	// A bare array, not an object wrapper.
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListRecipesEndpointStoreError(t *testing.T) {
	env := setupRecipeAPI(t)
	env.recipes.On("ListAll", mock.Anything).Return(nil, errors.New("connection reset")).Once()

	w := env.get(t, "/api/recipes", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetRecipeEndpoint(t *testing.T) {
	env := setupRecipeAPI(t)

	t.Run("malformed id", func(t *testing.T) {
		w := env.get(t, "/api/recipes/not-a-hex-id", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		id := primitive.NewObjectID()
		env.recipes.On("FindByID", mock.Anything, id).Return(nil, store.ErrNotFound).Once()

		w := env.get(t, "/api/recipes/"+id.Hex(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Recipe not found"}`, w.Body.String())
	})

	t.Run("found", func(t *testing.T) {
		recipe := &models.Recipe{
			ID:     primitive.NewObjectID(),
			Title:  "Pho",
			UserID: primitive.NewObjectID(),
		}
		recipe.Normalize()
		env.recipes.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil).Once()

		w := env.get(t, "/api/recipes/"+recipe.ID.Hex(), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, recipe.ID.Hex(), resp["_id"])
		assert.Equal(t, recipe.UserID.Hex(), resp["user_id"])
		assert.Equal(t, []any{}, resp["likes"])
		assert.Equal(t, []any{}, resp["comments"])
	})
}

func TestCreateRecipeEndpoint(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("requires a token", func(t *testing.T) {
		env := setupRecipeAPI(t)
		w := postJSON(t, env.router, "/api/recipes", fullRecipeBody(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"No token provided"}`, w.Body.String())
	})

	t.Run("rejects a bad token", func(t *testing.T) {
		env := setupRecipeAPI(t)
		w := postJSON(t, env.router, "/api/recipes", fullRecipeBody(), "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("names the first missing field", func(t *testing.T) {
		env := setupRecipeAPI(t)
		body := fullRecipeBody()
		delete(body, "cooking_time")

		w := postJSON(t, env.router, "/api/recipes", body, env.token(t, userID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing required field: cooking_time"}`, w.Body.String())
		env.recipes.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("creates", func(t *testing.T) {
		env := setupRecipeAPI(t)
		newID := primitive.NewObjectID()
		env.recipes.On("Insert", mock.Anything, mock.AnythingOfType("*models.Recipe")).Return(newID, nil).Once()

		w := postJSON(t, env.router, "/api/recipes", fullRecipeBody(), env.token(t, userID))
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, newID.Hex(), resp["_id"])
		assert.Equal(t, userID.Hex(), resp["user_id"])
		assert.Equal(t, []any{}, resp["likes"])
		assert.Equal(t, []any{}, resp["comments"])
		assert.Equal(t, float64(30), resp["cooking_time"])
	})
}

func TestUpdateRecipeEndpoint(t *testing.T) {
	env := setupRecipeAPI(t)
	recipeID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	intruderID := primitive.NewObjectID()

	body := gin.H{
		"title":        "New",
		"description":  "New",
		"ingredients":  []string{"a"},
		"instructions": []string{"b"},
	}

	t.Run("non-owner gets 403", func(t *testing.T) {
		env.recipes.On("FindByID", mock.Anything, recipeID).
			Return(&models.Recipe{ID: recipeID, UserID: ownerID}, nil).Once()

		req := httptest.NewRequest("PUT", "/api/recipes/"+recipeID.Hex(), jsonBody(t, body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+env.token(t, intruderID))
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env.recipes.AssertNotCalled(t, "SetFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner updates", func(t *testing.T) {
		env.recipes.On("FindByID", mock.Anything, recipeID).
			Return(&models.Recipe{ID: recipeID, UserID: ownerID, ImageURL: "old.jpg"}, nil).Once()
		env.recipes.On("SetFields", mock.Anything, recipeID, mock.MatchedBy(func(u store.RecipeUpdate) bool {
			return u.Title == "New" && u.ImageURL == "old.jpg"
		})).Return(nil).Once()

		req := httptest.NewRequest("PUT", "/api/recipes/"+recipeID.Hex(), jsonBody(t, body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+env.token(t, ownerID))
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Recipe updated successfully"}`, w.Body.String())
	})
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	env := setupRecipeAPI(t)
	recipeID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	env.recipes.On("FindByID", mock.Anything, recipeID).
		Return(&models.Recipe{ID: recipeID, UserID: ownerID}, nil).Once()
	env.recipes.On("Delete", mock.Anything, recipeID).Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/recipes/"+recipeID.Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+env.token(t, ownerID))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Recipe deleted successfully"}`, w.Body.String())
}

func TestToggleLikeEndpoint(t *testing.T) {
	env := setupRecipeAPI(t)
	recipeID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	token := env.token(t, userID)

	// First call adds the like, second removes it.
	env.recipes.On("FindByID", mock.Anything, recipeID).
		Return(&models.Recipe{ID: recipeID, Likes: []primitive.ObjectID{}}, nil).Once()
	env.recipes.On("AddLike", mock.Anything, recipeID, userID).Return(nil).Once()
	env.recipes.On("FindByID", mock.Anything, recipeID).
		Return(&models.Recipe{ID: recipeID, Likes: []primitive.ObjectID{userID}}, nil).Twice()
	env.recipes.On("RemoveLike", mock.Anything, recipeID, userID).Return(nil).Once()
	env.recipes.On("FindByID", mock.Anything, recipeID).
		Return(&models.Recipe{ID: recipeID, Likes: []primitive.ObjectID{}}, nil).Once()

	w := postJSON(t, env.router, "/api/recipes/"+recipeID.Hex()+"/like", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":true,"likeCount":1}`, w.Body.String())

	w = postJSON(t, env.router, "/api/recipes/"+recipeID.Hex()+"/like", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":false,"likeCount":0}`, w.Body.String())
}

func TestCommentEndpoints(t *testing.T) {
	env := setupRecipeAPI(t)
	recipeID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	token := env.token(t, userID)

	t.Run("empty content", func(t *testing.T) {
		env.users.On("FindByID", mock.Anything, userID).
			Return(&models.User{ID: userID, Name: "V"}, nil)

		w := postJSON(t, env.router, "/api/recipes/"+recipeID.Hex()+"/comments", gin.H{"content": ""}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Comment content is required"}`, w.Body.String())
	})

	t.Run("404 names the missing author", func(t *testing.T) {
		ghost := primitive.NewObjectID()
		ghostToken := env.token(t, ghost)
		env.users.On("FindByID", mock.Anything, ghost).Return(nil, store.ErrNotFound).Once()

		w := postJSON(t, env.router, "/api/recipes/"+recipeID.Hex()+"/comments", gin.H{"content": "tasty"}, ghostToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	})

	t.Run("adds a comment", func(t *testing.T) {
		env.recipes.On("FindByID", mock.Anything, recipeID).
			Return(&models.Recipe{ID: recipeID, Comments: []models.Comment{}}, nil).Once()
		env.recipes.On("PushComment", mock.Anything, recipeID, mock.AnythingOfType("models.Comment")).
			Return(nil).Once()
		env.recipes.On("FindByID", mock.Anything, recipeID).
			Return(&models.Recipe{ID: recipeID, Comments: []models.Comment{
				{Content: "tasty", UserID: userID, UserName: "V"},
			}}, nil).Once()

		w := postJSON(t, env.router, "/api/recipes/"+recipeID.Hex()+"/comments", gin.H{"content": "tasty"}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Comment added successfully", resp["message"])
		assert.Equal(t, float64(1), resp["commentsCount"])
		comments := resp["comments"].([]any)
		require.Len(t, comments, 1)
		assert.Equal(t, "tasty", comments[0].(map[string]any)["content"])
	})

	t.Run("lists comments without auth", func(t *testing.T) {
		env.recipes.On("FindByID", mock.Anything, recipeID).
			Return(&models.Recipe{ID: recipeID, Comments: []models.Comment{
				{Content: "tasty", UserID: userID, UserName: "V"},
			}}, nil).Once()

		w := env.get(t, "/api/recipes/"+recipeID.Hex()+"/comments", "")
		require.Equal(t, http.StatusOK, w.Code)

		var comments []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
		require.Len(t, comments, 1)
		assert.Equal(t, "tasty", comments[0]["content"])
	})

	t.Run("404 for an unknown recipe", func(t *testing.T) {
		unknown := primitive.NewObjectID()
		env.recipes.On("FindByID", mock.Anything, unknown).Return(nil, store.ErrNotFound).Once()

		w := env.get(t, "/api/recipes/"+unknown.Hex()+"/comments", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFavoritesEndpoint(t *testing.T) {
	env := setupRecipeAPI(t)
	userID := primitive.NewObjectID()

	t.Run("requires auth", func(t *testing.T) {
		w := env.get(t, "/api/recipes/favorites", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns liked recipes", func(t *testing.T) {
		liked := models.Recipe{ID: primitive.NewObjectID(), Title: "Pho", Likes: []primitive.ObjectID{userID}}
		env.recipes.On("ListLikedBy", mock.Anything, userID).Return([]models.Recipe{liked}, nil).Once()

		w := env.get(t, "/api/recipes/favorites", env.token(t, userID))
		require.Equal(t, http.StatusOK, w.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, liked.ID.Hex(), resp[0]["_id"])
	})
}

func TestUserRecipesEndpoint(t *testing.T) {
	env := setupRecipeAPI(t)
	ownerID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	t.Run("requires auth", func(t *testing.T) {
		w := env.get(t, "/api/recipes/user/"+ownerID.Hex(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("lists any user's recipes for an authenticated caller", func(t *testing.T) {
		env.recipes.On("ListByOwner", mock.Anything, ownerID).Return([]models.Recipe{}, nil).Once()

		w := env.get(t, "/api/recipes/user/"+ownerID.Hex(), env.token(t, callerID))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestSearchEndpoint(t *testing.T) {
	env := setupRecipeAPI(t)

	good := models.Recipe{ID: primitive.NewObjectID(), Title: "Pho", Description: "Soup", CuisineType: "Vietnamese"}
	broken := models.Recipe{ID: primitive.NewObjectID(), Description: "no title"}
	env.recipes.On("Search", mock.Anything, "soup", "Vietnamese").
		Return([]models.Recipe{good, broken}, nil).Once()

	w := env.get(t, "/api/recipes/search?q=soup&cuisine=Vietnamese", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, good.ID.Hex(), resp[0]["_id"])
}
