package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/platefeed/backend/internal/middleware"
	"github.com/platefeed/backend/internal/service"
	"github.com/platefeed/backend/internal/store"
)

// RecipeHandler serves every /recipes route.
type RecipeHandler struct {
	recipes   *service.RecipeService
	validator middleware.TokenValidator
	logger    *zap.Logger
}

func NewRecipeHandler(recipes *service.RecipeService, validator middleware.TokenValidator, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes:   recipes,
		validator: validator,
		logger:    logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.validator)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/favorites", auth, h.ListFavorites)
		recipes.GET("/user/:id", auth, h.ListUserRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", auth, h.CreateRecipe)
		recipes.PUT("/:id", auth, h.UpdateRecipe)
		recipes.DELETE("/:id", auth, h.DeleteRecipe)
		recipes.POST("/:id/like", auth, h.ToggleLike)
		recipes.POST("/:id/comments", auth, h.AddComment)
		recipes.GET("/:id/comments", h.GetComments)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	recipes, err := h.recipes.Search(c.Request.Context(), c.Query("q"), c.Query("cuisine"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListUserRecipes(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	recipes, err := h.recipes.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	recipes, err := h.recipes.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var in service.CreateRecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), userID, &in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, recipeID, ok := h.callerAndRecipe(c)
	if !ok {
		return
	}

	var in service.UpdateRecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.recipes.Update(c.Request.Context(), recipeID, userID, &in); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe updated successfully"})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, recipeID, ok := h.callerAndRecipe(c)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), recipeID, userID); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

func (h *RecipeHandler) ToggleLike(c *gin.Context) {
	userID, recipeID, ok := h.callerAndRecipe(c)
	if !ok {
		return
	}

	liked, count, err := h.recipes.ToggleLike(c.Request.Context(), recipeID, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, LikeResponse{Liked: liked, LikeCount: count})
}

func (h *RecipeHandler) AddComment(c *gin.Context) {
	userID, recipeID, ok := h.callerAndRecipe(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content is required"})
		return
	}

	comments, err := h.recipes.AddComment(c.Request.Context(), recipeID, userID, req.Content)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CommentsResponse{
		Message:       "Comment added successfully",
		CommentsCount: len(comments),
		Comments:      comments,
	})
}

func (h *RecipeHandler) GetComments(c *gin.Context) {
	recipeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	comments, err := h.recipes.Comments(c.Request.Context(), recipeID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// callerAndRecipe extracts the authenticated user id and the :id path
// parameter, writing the error response itself when either is unusable.
func (h *RecipeHandler) callerAndRecipe(c *gin.Context) (userID, recipeID primitive.ObjectID, ok bool) {
	userID, idOK := middleware.UserID(c)
	if !idOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	recipeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return userID, recipeID, true
}

// writeError maps service and store errors onto the HTTP contract. Anything
// outside the taxonomy is a store failure and surfaces as a 500 with the
// underlying message.
func (h *RecipeHandler) writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	default:
		h.logger.Error("recipe store error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
