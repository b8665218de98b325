package router

import (
	"github.com/gin-gonic/gin"

	"github.com/platefeed/backend/config"
	"github.com/platefeed/backend/internal/api"
	"github.com/platefeed/backend/internal/middleware"
)

// New assembles the gin engine: recovery, CORS and the /api route tree.
func New(cfg *config.Config, authHandler *api.AuthHandler, recipeHandler *api.RecipeHandler, imageHandler *api.ImageHandler) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	apiGroup := router.Group("/api")
	authHandler.RegisterRoutes(apiGroup)
	recipeHandler.RegisterRoutes(apiGroup)
	imageHandler.RegisterRoutes(apiGroup)

	return router
}
