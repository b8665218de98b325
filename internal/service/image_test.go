package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefeed/backend/config"
	"github.com/platefeed/backend/internal/service"
)

// Every rejection happens before the S3 client is touched, so validation is
// testable without credentials.
func TestUploadRecipeImageValidation(t *testing.T) {
	svc := service.NewImageService(&config.S3Config{BucketName: "platefeed-images"})

	tests := []struct {
		name    string
		data    []byte
		message string
	}{
		{"empty data", nil, "Image data is required"},
		{"oversized", make([]byte, service.MaxImageBytes+1), "Image exceeds the 5MB limit"},
		{"not an image", []byte("plain text, sniffed as text/plain"), "Unsupported image type"},
		{"unsupported image format", []byte("BM\x00\x00\x00\x00"), "Unsupported image type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadRecipeImage(context.Background(), tt.data)
			var verr *service.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}
