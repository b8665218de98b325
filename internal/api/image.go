package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/platefeed/backend/internal/middleware"
	"github.com/platefeed/backend/internal/service"
)

// ImageHandler serves recipe image uploads. When the server runs without S3
// configuration the handler stays registered and answers 503.
type ImageHandler struct {
	images    *service.ImageService
	validator middleware.TokenValidator
	logger    *zap.Logger
}

func NewImageHandler(images *service.ImageService, validator middleware.TokenValidator, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		images:    images,
		validator: validator,
		logger:    logger,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/image", middleware.AuthMiddleware(h.validator), h.UploadImage)
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	defer file.Close()

	if header.Size > service.MaxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds the 5MB limit"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}

	url, err := h.images.UploadRecipeImage(c.Request.Context(), data)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		h.logger.Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{ImageURL: url})
}
