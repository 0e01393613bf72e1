package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      entity.UserRole `json:"role"`
}

type UserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Title     entity.UserTitle  `json:"title,omitempty"`
	Role      entity.UserRole   `json:"role"`
	Status    entity.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Title:     user.Title,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		UserID:    user.ID.String(),
		Token:     token,
		ExpiresAt: expiresAt,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
}
