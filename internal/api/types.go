package api

import "github.com/platefeed/backend/internal/models"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserPayload is the public view of a user returned by the auth endpoints.
type UserPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

func newAuthResponse(user *models.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User: UserPayload{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Name:  user.Name,
		},
	}
}

type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type CommentsResponse struct {
	Message       string           `json:"message"`
	CommentsCount int              `json:"commentsCount"`
	Comments      []models.Comment `json:"comments"`
}

type UploadResponse struct {
	ImageURL string `json:"image_url"`
}
