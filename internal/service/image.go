package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/platefeed/backend/config"
)

// MaxImageBytes caps uploaded recipe images at 5 MiB.
const MaxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageService stores recipe images in S3 and hands back public URLs that
// clients put into a recipe's image_url field.
type ImageService struct {
	storage *config.S3Config
}

func NewImageService(storage *config.S3Config) *ImageService {
	return &ImageService{storage: storage}
}

// UploadRecipeImage uploads image data under a fresh key and returns its
// public URL. The content type is sniffed from the data, not trusted from
// the request.
func (s *ImageService) UploadRecipeImage(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ValidationError{Field: "image", Message: "Image data is required"}
	}
	if len(data) > MaxImageBytes {
		return "", &ValidationError{Field: "image", Message: "Image exceeds the 5MB limit"}
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", &ValidationError{Field: "image", Message: "Unsupported image type"}
	}

	key := fmt.Sprintf("recipes/%s%s", uuid.New().String(), ext)

	_, err := s.storage.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.storage.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading image to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.storage.BucketName, key), nil
}
