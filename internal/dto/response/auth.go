package response

import (
	"time"

	"micron-api/internal/data/entity"
)

type CheckDuplicateResponse struct {
	Exists bool `json:"exists"`
}

// AuthResponse is returned by signup (message, token) and login (message, token, role).
type AuthResponse struct {
	UserID  int64           `json:"-"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Role    entity.UserRole `json:"role,omitempty"`
}

type ProfileResponse struct {
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminProfileResponse struct {
	Phone string `json:"phone"`
}

type TotalUsersResponse struct {
	TotalUsers int64 `json:"totalUsers"`
}

type UserSummaryResponse struct {
	ID    int64           `json:"id"`
	Phone string          `json:"phone"`
	Role  entity.UserRole `json:"role"`
}

func UserToSummary(user *entity.User) UserSummaryResponse {
	return UserSummaryResponse{
		ID:    user.ID,
		Phone: user.Phone,
		Role:  user.Role,
	}
}
